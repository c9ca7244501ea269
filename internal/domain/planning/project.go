package planning

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/shared"
)

// Project is a unit of work with one immutable owner, an optional member
// set, and an aggregate of tasks. Only the owner may update or delete it.
type Project struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	Status      ProjectStatus
	Priority    Priority
	DueDate     *time.Time
	OwnerID     uuid.UUID
	MemberIDs   []uuid.UUID
}

// NewProject creates a project owned by the given user
func NewProject(ownerID uuid.UUID, name string) (*Project, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Owner is required")
	}
	if err := validateProjectName(name); err != nil {
		return nil, err
	}

	return &Project{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Status:            ProjectStatusPlanning,
		Priority:          PriorityMedium,
		OwnerID:           ownerID,
		MemberIDs:         make([]uuid.UUID, 0),
	}, nil
}

// IsOwner reports whether the user owns this project
func (p *Project) IsOwner(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// IsMember reports whether the user is in the member set
func (p *Project) IsMember(userID uuid.UUID) bool {
	for _, id := range p.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// SetName sets the project name
func (p *Project) SetName(name string) error {
	if err := validateProjectName(name); err != nil {
		return err
	}
	p.Name = strings.TrimSpace(name)
	p.Touch()
	return nil
}

// SetDescription sets the project description
func (p *Project) SetDescription(description string) {
	p.Description = description
	p.Touch()
}

// SetStatus sets the project status
func (p *Project) SetStatus(status ProjectStatus) {
	p.Status = status
	p.Touch()
}

// SetPriority sets the project priority
func (p *Project) SetPriority(priority Priority) {
	p.Priority = priority
	p.Touch()
}

// SetDueDate sets or clears the project due date
func (p *Project) SetDueDate(dueDate *time.Time) {
	p.DueDate = dueDate
	p.Touch()
}

// SetMembers replaces the member set, deduplicating and dropping the owner
// (ownership already grants access).
func (p *Project) SetMembers(memberIDs []uuid.UUID) {
	seen := make(map[uuid.UUID]bool)
	members := make([]uuid.UUID, 0, len(memberIDs))
	for _, id := range memberIDs {
		if id == uuid.Nil || id == p.OwnerID || seen[id] {
			continue
		}
		seen[id] = true
		members = append(members, id)
	}
	p.MemberIDs = members
	p.Touch()
}

func validateProjectName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Project name is required")
	}
	if len(name) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Project name cannot exceed 200 characters")
	}
	return nil
}
