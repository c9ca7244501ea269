package identity

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains the input for account registration
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

// AuthenticateInput contains the input for login
type AuthenticateInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult contains the session token and user info after a successful
// registration or login
type AuthResult struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// UserInfo contains basic user information
type UserInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// UpdateProfileInput contains the input for a partial profile update.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Name   *string   `json:"name" validate:"omitempty,max=100"`
	Email  *string   `json:"email" validate:"omitempty,email"`
	Role   *string   `json:"role"`
}

// MemberInfo contains a team member profile joined with its user account
type MemberInfo struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	Phone        string    `json:"phone"`
	Skills       []string  `json:"skills"`
	Availability string    `json:"availability"`
	JoinedAt     time.Time `json:"joined_at"`
}

// UpdateMemberInput contains the input for a partial team member update.
// Nil fields are left unchanged.
type UpdateMemberInput struct {
	MemberID     uuid.UUID `json:"member_id" validate:"required"`
	Role         *string   `json:"role"`
	Department   *string   `json:"department" validate:"omitempty,max=100"`
	Phone        *string   `json:"phone" validate:"omitempty,max=50"`
	Skills       []string  `json:"skills"`
	Availability *string   `json:"availability"`
}

// SendInviteInput contains the input for sending an invite
type SendInviteInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// AcceptInviteInput contains the input for accepting a pending invite.
// The invitee chooses their password at acceptance.
type AcceptInviteInput struct {
	InviteID uuid.UUID `json:"invite_id" validate:"required"`
	Password string    `json:"password" validate:"required,min=6"`
}

// InviteInfo contains a pending invite
type InviteInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
