package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/identity"
	"github.com/planora/backend/internal/domain/shared"
	"github.com/planora/backend/internal/infrastructure/validation"
	"go.uber.org/zap"
)

// AccountService handles registration, authentication and team member
// management
type AccountService struct {
	userRepo   identity.UserRepository
	memberRepo identity.TeamMemberRepository
	uow        identity.UnitOfWork
	hasher     identity.PasswordHasher
	tokens     identity.TokenIssuer
	validator  *validation.Validator
	logger     *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo identity.UserRepository,
	memberRepo identity.TeamMemberRepository,
	uow identity.UnitOfWork,
	hasher identity.PasswordHasher,
	tokens identity.TokenIssuer,
	validator *validation.Validator,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		userRepo:   userRepo,
		memberRepo: memberRepo,
		uow:        uow,
		hasher:     hasher,
		tokens:     tokens,
		validator:  validator,
		logger:     logger,
	}
}

// Register creates a user account and its team member profile in one atomic
// unit, then issues a session token
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	role, err := identity.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register account")
	}
	if exists {
		s.logger.Warn("Registration with taken email", zap.String("email", identity.NormalizeEmail(input.Email)))
		return nil, shared.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register account")
	}

	user, err := identity.NewUser(input.Name, input.Email, hash, role)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(users identity.UserRepository, members identity.TeamMemberRepository, _ identity.InviteRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		member, err := identity.NewTeamMember(user.ID, user.Role)
		if err != nil {
			return err
		}
		return members.Create(ctx, member)
	})
	if err != nil {
		s.logger.Error("Failed to create account", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register account")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token after registration", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to issue session token")
	}

	s.logger.Info("Account registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return &AuthResult{Token: token, User: toUserInfo(user)}, nil
}

// Authenticate verifies credentials and issues a session token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AccountService) Authenticate(ctx context.Context, input AuthenticateInput) (*AuthResult, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email")
		return nil, shared.ErrInvalidCredential
	}

	if !s.hasher.Verify(user.PasswordHash, input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, shared.ErrInvalidCredential
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to issue session token")
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &AuthResult{Token: token, User: toUserInfo(user)}, nil
}

// UpdateProfile applies a partial update to a user account
func (s *AccountService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*UserInfo, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := user.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		newEmail := identity.NormalizeEmail(*input.Email)
		if newEmail != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, newEmail)
			if err != nil {
				s.logger.Error("Failed to check email uniqueness", zap.Error(err))
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
			}
			if exists {
				return nil, shared.ErrDuplicateEmail
			}
		}
		if err := user.SetEmail(*input.Email); err != nil {
			return nil, err
		}
	}
	if input.Role != nil {
		role, err := identity.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		user.SetRole(role)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	s.logger.Info("Profile updated", zap.String("user_id", user.ID.String()))

	info := toUserInfo(user)
	return &info, nil
}

// GetMember returns one team member profile joined with its user account
func (s *AccountService) GetMember(ctx context.Context, memberID uuid.UUID) (*MemberInfo, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, member.UserID)
	if err != nil {
		return nil, err
	}

	info := toMemberInfo(member, user)
	return &info, nil
}

// ListMembers returns all team member profiles, newest first, joined with
// their user accounts
func (s *AccountService) ListMembers(ctx context.Context) ([]MemberInfo, error) {
	members, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]MemberInfo, 0, len(members))
	for _, member := range members {
		user, err := s.userRepo.FindByID(ctx, member.UserID)
		if err != nil {
			// Orphaned profiles are skipped rather than failing the listing
			s.logger.Warn("Team member without user account",
				zap.String("member_id", member.ID.String()),
				zap.Error(err))
			continue
		}
		infos = append(infos, toMemberInfo(member, user))
	}
	return infos, nil
}

// UpdateMember applies a partial update to a team member profile
func (s *AccountService) UpdateMember(ctx context.Context, input UpdateMemberInput) (*MemberInfo, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		role, err := identity.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		member.SetRole(role)
	}
	if input.Department != nil {
		if err := member.SetDepartment(*input.Department); err != nil {
			return nil, err
		}
	}
	if input.Phone != nil {
		if err := member.SetPhone(*input.Phone); err != nil {
			return nil, err
		}
	}
	if input.Skills != nil {
		member.SetSkills(input.Skills)
	}
	if input.Availability != nil {
		availability, err := identity.ParseAvailability(*input.Availability)
		if err != nil {
			return nil, err
		}
		member.SetAvailability(availability)
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		s.logger.Error("Failed to update team member", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update team member")
	}

	s.logger.Info("Team member updated", zap.String("member_id", member.ID.String()))

	user, err := s.userRepo.FindByID(ctx, member.UserID)
	if err != nil {
		return nil, err
	}

	info := toMemberInfo(member, user)
	return &info, nil
}

// RemoveMember deletes a team member profile together with its user account
// in one atomic unit
func (s *AccountService) RemoveMember(ctx context.Context, memberID uuid.UUID) error {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return err
	}

	err = s.uow.WithinTx(ctx, func(users identity.UserRepository, members identity.TeamMemberRepository, _ identity.InviteRepository) error {
		if err := members.Delete(ctx, member.ID); err != nil {
			return err
		}
		return users.Delete(ctx, member.UserID)
	})
	if err != nil {
		s.logger.Error("Failed to remove team member", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove team member")
	}

	s.logger.Info("Team member removed",
		zap.String("member_id", member.ID.String()),
		zap.String("user_id", member.UserID.String()))

	return nil
}

func toUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

func toMemberInfo(member *identity.TeamMember, user *identity.User) MemberInfo {
	return MemberInfo{
		ID:           member.ID,
		UserID:       member.UserID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         string(member.Role),
		Department:   member.Department,
		Phone:        member.Phone,
		Skills:       member.Skills,
		Availability: string(member.Availability),
		JoinedAt:     member.JoinedAt,
	}
}
