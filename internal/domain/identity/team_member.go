package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/shared"
)

// Availability describes a team member's current capacity
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityBusy      Availability = "Busy"
	AvailabilityOnLeave   Availability = "On Leave"
)

// ParseAvailability resolves an availability value case-insensitively
func ParseAvailability(s string) (Availability, error) {
	for _, a := range []Availability{AvailabilityAvailable, AvailabilityBusy, AvailabilityOnLeave} {
		if strings.EqualFold(strings.TrimSpace(s), string(a)) {
			return a, nil
		}
	}
	return "", shared.NewDomainError("VALIDATION_ERROR", "Unknown availability: "+s)
}

// TeamMember is the organizational profile extending a User.
// Exactly one TeamMember exists per User (unique user_id).
type TeamMember struct {
	shared.BaseAggregateRoot
	UserID       uuid.UUID
	Role         Role
	Department   string
	Phone        string
	Skills       []string
	Availability Availability
	JoinedAt     time.Time
}

// NewTeamMember creates the profile for a user
func NewTeamMember(userID uuid.UUID, role Role) (*TeamMember, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "User ID is required")
	}

	return &TeamMember{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Role:              role,
		Skills:            make([]string, 0),
		Availability:      AvailabilityAvailable,
		JoinedAt:          time.Now(),
	}, nil
}

// SetRole sets the member's organizational role
func (m *TeamMember) SetRole(role Role) {
	m.Role = role
	m.Touch()
}

// SetDepartment sets the member's department
func (m *TeamMember) SetDepartment(department string) error {
	if len(department) > 100 {
		return shared.NewDomainError("VALIDATION_ERROR", "Department cannot exceed 100 characters")
	}
	m.Department = strings.TrimSpace(department)
	m.Touch()
	return nil
}

// SetPhone sets the member's phone number
func (m *TeamMember) SetPhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("VALIDATION_ERROR", "Phone cannot exceed 50 characters")
	}
	m.Phone = strings.TrimSpace(phone)
	m.Touch()
	return nil
}

// SetSkills replaces the member's skill list, dropping blank entries
func (m *TeamMember) SetSkills(skills []string) {
	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	m.Skills = cleaned
	m.Touch()
}

// SetAvailability sets the member's availability
func (m *TeamMember) SetAvailability(availability Availability) {
	m.Availability = availability
	m.Touch()
}
