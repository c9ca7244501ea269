package identity

import (
	"strings"

	"github.com/planora/backend/internal/domain/shared"
)

// InviteStatus is the lifecycle state of a membership offer
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRevoked  InviteStatus = "revoked"
)

// Invite is a pending offer of team membership tied to a unique email.
// Accepting promotes it into a User plus TeamMember; revoking removes it
// from the pending set with no further side effects.
type Invite struct {
	shared.BaseAggregateRoot
	Name   string
	Email  string
	Role   Role
	Status InviteStatus
}

// NewInvite creates a pending invite
func NewInvite(name, email string, role Role) (*Invite, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	return &Invite{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Email:             NormalizeEmail(email),
		Role:              role,
		Status:            InviteStatusPending,
	}, nil
}

// IsPending reports whether the invite is still open
func (i *Invite) IsPending() bool {
	return i.Status == InviteStatusPending
}

// Accept marks the invite accepted. Only pending invites may transition.
func (i *Invite) Accept() error {
	if i.Status != InviteStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Invite is not pending")
	}
	i.Status = InviteStatusAccepted
	i.Touch()
	return nil
}

// Revoke marks the invite revoked. Only pending invites may transition.
func (i *Invite) Revoke() error {
	if i.Status != InviteStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Invite is not pending")
	}
	i.Status = InviteStatusRevoked
	i.Touch()
	return nil
}
