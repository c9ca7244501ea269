package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/planning"
)

// ProjectModel is the persistence model for the Project domain entity.
type ProjectModel struct {
	AggregateModel
	Name        string                 `gorm:"type:varchar(200);not null"`
	Description string                 `gorm:"type:text"`
	Status      planning.ProjectStatus `gorm:"type:varchar(20);not null;default:'Planning';index"`
	Priority    planning.Priority      `gorm:"type:varchar(10);not null;default:'Medium'"`
	DueDate     *time.Time             `gorm:"index"`
	OwnerID     uuid.UUID              `gorm:"type:uuid;not null;index"`
	MemberIDs   []uuid.UUID            `gorm:"serializer:json;type:text"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *planning.Project {
	members := m.MemberIDs
	if members == nil {
		members = []uuid.UUID{}
	}
	return &planning.Project{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		Status:            m.Status,
		Priority:          m.Priority,
		DueDate:           m.DueDate,
		OwnerID:           m.OwnerID,
		MemberIDs:         members,
	}
}

// FromDomain populates the persistence model from a domain Project entity.
func (m *ProjectModel) FromDomain(p *planning.Project) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Description = p.Description
	m.Status = p.Status
	m.Priority = p.Priority
	m.DueDate = p.DueDate
	m.OwnerID = p.OwnerID
	m.MemberIDs = p.MemberIDs
}

// ProjectModelFromDomain creates a new persistence model from a domain Project entity.
func ProjectModelFromDomain(p *planning.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}

// TaskModel is the persistence model for the Task domain entity.
type TaskModel struct {
	AggregateModel
	Title       string              `gorm:"type:varchar(200);not null"`
	Description string              `gorm:"type:text"`
	Status      planning.TaskStatus `gorm:"type:varchar(20);not null;default:'Todo';index"`
	Priority    planning.Priority   `gorm:"type:varchar(10);not null;default:'Medium'"`
	DueDate     *time.Time          `gorm:"index"`
	ProjectID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	AssignedTo  *uuid.UUID          `gorm:"type:uuid;index"`
	CreatedBy   uuid.UUID           `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task entity.
func (m *TaskModel) ToDomain() *planning.Task {
	return &planning.Task{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Title:             m.Title,
		Description:       m.Description,
		Status:            m.Status,
		Priority:          m.Priority,
		DueDate:           m.DueDate,
		ProjectID:         m.ProjectID,
		AssignedTo:        m.AssignedTo,
		CreatedBy:         m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain Task entity.
func (m *TaskModel) FromDomain(t *planning.Task) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Title = t.Title
	m.Description = t.Description
	m.Status = t.Status
	m.Priority = t.Priority
	m.DueDate = t.DueDate
	m.ProjectID = t.ProjectID
	m.AssignedTo = t.AssignedTo
	m.CreatedBy = t.CreatedBy
}

// TaskModelFromDomain creates a new persistence model from a domain Task entity.
func TaskModelFromDomain(t *planning.Task) *TaskModel {
	m := &TaskModel{}
	m.FromDomain(t)
	return m
}
