package identity

import (
	"regexp"
	"strings"

	"github.com/planora/backend/internal/domain/shared"
)

// Role is the organizational role of a user or invitee
type Role string

const (
	RoleAdmin             Role = "Admin"
	RoleProjectManager    Role = "Project Manager"
	RoleDeveloper         Role = "Developer"
	RoleDesigner          Role = "Designer"
	RoleFrontendDeveloper Role = "Frontend Developer"
	RoleBackendDeveloper  Role = "Backend Developer"
)

var roles = []Role{
	RoleAdmin,
	RoleProjectManager,
	RoleDeveloper,
	RoleDesigner,
	RoleFrontendDeveloper,
	RoleBackendDeveloper,
}

// ParseRole resolves a role name case-insensitively to its canonical form
func ParseRole(s string) (Role, error) {
	trimmed := strings.TrimSpace(s)
	for _, r := range roles {
		if strings.EqualFold(trimmed, string(r)) {
			return r, nil
		}
	}
	return "", shared.NewDomainError("VALIDATION_ERROR", "Unknown role: "+s)
}

// User represents an account in the directory.
// The password credential is an opaque hash produced by the credential layer.
type User struct {
	shared.BaseAggregateRoot
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

// NewUser creates a new user with required fields
func NewUser(name, email, passwordHash string, role Role) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Password credential is required")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Email:             NormalizeEmail(email),
		PasswordHash:      passwordHash,
		Role:              role,
	}, nil
}

// SetName sets the user's display name
func (u *User) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	u.Name = strings.TrimSpace(name)
	u.Touch()
	return nil
}

// SetEmail sets the user's email. Uniqueness is enforced by the store.
func (u *User) SetEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	u.Email = NormalizeEmail(email)
	u.Touch()
	return nil
}

// SetRole sets the user's role
func (u *User) SetRole(role Role) {
	u.Role = role
	u.Touch()
}

// SetPasswordHash replaces the stored credential hash
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Password credential is required")
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks the email format
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Email is required")
	}
	if len(email) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("VALIDATION_ERROR", "Invalid email format")
	}
	return nil
}

// NormalizeEmail lowercases and trims an email for comparison and storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Name is required")
	}
	if len(name) > 100 {
		return shared.NewDomainError("VALIDATION_ERROR", "Name cannot exceed 100 characters")
	}
	return nil
}
