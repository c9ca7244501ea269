package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/identity"
	"github.com/planora/backend/internal/domain/shared"
	"github.com/planora/backend/internal/infrastructure/validation"
	"go.uber.org/zap"
)

// InviteService manages the invite lifecycle: sending, acceptance and
// revocation
type InviteService struct {
	inviteRepo identity.InviteRepository
	userRepo   identity.UserRepository
	uow        identity.UnitOfWork
	hasher     identity.PasswordHasher
	validator  *validation.Validator
	logger     *zap.Logger
}

// NewInviteService creates a new invite service
func NewInviteService(
	inviteRepo identity.InviteRepository,
	userRepo identity.UserRepository,
	uow identity.UnitOfWork,
	hasher identity.PasswordHasher,
	validator *validation.Validator,
	logger *zap.Logger,
) *InviteService {
	return &InviteService{
		inviteRepo: inviteRepo,
		userRepo:   userRepo,
		uow:        uow,
		hasher:     hasher,
		validator:  validator,
		logger:     logger,
	}
}

// Send creates a pending invite. The email must not belong to an existing
// account or another pending invite, compared case-insensitively.
func (s *InviteService) Send(ctx context.Context, input SendInviteInput) (*InviteInfo, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	role, err := identity.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	email := identity.NormalizeEmail(input.Email)

	registered, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to check registered emails", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to send invite")
	}
	if registered {
		return nil, shared.ErrDuplicateInvite
	}

	pending, err := s.inviteRepo.ExistsPendingByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to check pending invites", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to send invite")
	}
	if pending {
		return nil, shared.ErrDuplicateInvite
	}

	invite, err := identity.NewInvite(input.Name, input.Email, role)
	if err != nil {
		return nil, err
	}

	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		s.logger.Error("Failed to create invite", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to send invite")
	}

	s.logger.Info("Invite sent",
		zap.String("invite_id", invite.ID.String()),
		zap.String("role", string(invite.Role)))

	info := toInviteInfo(invite)
	return &info, nil
}

// Accept promotes a pending invite into a user account and team member
// profile in one atomic unit. The invitee sets their password here.
func (s *InviteService) Accept(ctx context.Context, input AcceptInviteInput) (*MemberInfo, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	invite, err := s.inviteRepo.FindByID(ctx, input.InviteID)
	if err != nil {
		return nil, err
	}
	if err := invite.Accept(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to accept invite")
	}

	user, err := identity.NewUser(invite.Name, invite.Email, hash, invite.Role)
	if err != nil {
		return nil, err
	}

	var member *identity.TeamMember
	err = s.uow.WithinTx(ctx, func(users identity.UserRepository, members identity.TeamMemberRepository, invites identity.InviteRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		member, err = identity.NewTeamMember(user.ID, user.Role)
		if err != nil {
			return err
		}
		if err := members.Create(ctx, member); err != nil {
			return err
		}
		return invites.Update(ctx, invite)
	})
	if err != nil {
		s.logger.Error("Failed to accept invite", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to accept invite")
	}

	s.logger.Info("Invite accepted",
		zap.String("invite_id", invite.ID.String()),
		zap.String("user_id", user.ID.String()))

	info := toMemberInfo(member, user)
	return &info, nil
}

// Revoke withdraws a pending invite
func (s *InviteService) Revoke(ctx context.Context, inviteID uuid.UUID) error {
	invite, err := s.inviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		return err
	}
	if err := invite.Revoke(); err != nil {
		return err
	}

	if err := s.inviteRepo.Update(ctx, invite); err != nil {
		s.logger.Error("Failed to revoke invite", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke invite")
	}

	s.logger.Info("Invite revoked", zap.String("invite_id", invite.ID.String()))
	return nil
}

// ListPending returns all pending invites, newest first
func (s *InviteService) ListPending(ctx context.Context) ([]InviteInfo, error) {
	invites, err := s.inviteRepo.FindPending(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]InviteInfo, len(invites))
	for i, invite := range invites {
		infos[i] = toInviteInfo(invite)
	}
	return infos, nil
}

func toInviteInfo(invite *identity.Invite) InviteInfo {
	return InviteInfo{
		ID:        invite.ID,
		Name:      invite.Name,
		Email:     invite.Email,
		Role:      string(invite.Role),
		Status:    string(invite.Status),
		CreatedAt: invite.CreatedAt,
	}
}
