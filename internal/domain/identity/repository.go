package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete deletes a user by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by normalized email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// TeamMemberRepository defines the interface for team member persistence
type TeamMemberRepository interface {
	// Create creates a new team member profile
	Create(ctx context.Context, member *TeamMember) error

	// Update updates an existing team member
	Update(ctx context.Context, member *TeamMember) error

	// Delete deletes a team member by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a team member by ID
	FindByID(ctx context.Context, id uuid.UUID) (*TeamMember, error)

	// FindByUserID finds the profile linked to a user
	FindByUserID(ctx context.Context, userID uuid.UUID) (*TeamMember, error)

	// FindAll returns all team members, newest first
	FindAll(ctx context.Context) ([]*TeamMember, error)
}

// InviteRepository defines the interface for invite persistence
type InviteRepository interface {
	// Create creates a new invite
	Create(ctx context.Context, invite *Invite) error

	// Update updates an existing invite
	Update(ctx context.Context, invite *Invite) error

	// Delete deletes an invite by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an invite by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invite, error)

	// FindPending returns all pending invites, newest first
	FindPending(ctx context.Context) ([]*Invite, error)

	// ExistsPendingByEmail checks if a pending invite holds the normalized email
	ExistsPendingByEmail(ctx context.Context, email string) (bool, error)
}

// UnitOfWork runs a function against the identity repositories inside a
// single atomic unit. A failure partway through rolls everything back, so
// multi-entity operations (member removal, invite acceptance) cannot leave
// orphaned records.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(users UserRepository, members TeamMemberRepository, invites InviteRepository) error) error
}
