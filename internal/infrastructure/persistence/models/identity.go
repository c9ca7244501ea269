package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Name         string        `gorm:"type:varchar(100);not null"`
	Email        string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string        `gorm:"type:varchar(255);not null"`
	Role         identity.Role `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Role:              m.Role,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Name = u.Name
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// TeamMemberModel is the persistence model for the TeamMember domain entity.
type TeamMemberModel struct {
	AggregateModel
	UserID       uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex"`
	Role         identity.Role         `gorm:"type:varchar(50);not null"`
	Department   string                `gorm:"type:varchar(100)"`
	Phone        string                `gorm:"type:varchar(50)"`
	Skills       []string              `gorm:"serializer:json;type:text"`
	Availability identity.Availability `gorm:"type:varchar(20);not null;default:'Available'"`
	JoinedAt     time.Time             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TeamMemberModel) TableName() string {
	return "team_members"
}

// ToDomain converts the persistence model to a domain TeamMember entity.
func (m *TeamMemberModel) ToDomain() *identity.TeamMember {
	skills := m.Skills
	if skills == nil {
		skills = []string{}
	}
	return &identity.TeamMember{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		UserID:            m.UserID,
		Role:              m.Role,
		Department:        m.Department,
		Phone:             m.Phone,
		Skills:            skills,
		Availability:      m.Availability,
		JoinedAt:          m.JoinedAt,
	}
}

// FromDomain populates the persistence model from a domain TeamMember entity.
func (m *TeamMemberModel) FromDomain(tm *identity.TeamMember) {
	m.FromDomainAggregateRoot(tm.BaseAggregateRoot)
	m.UserID = tm.UserID
	m.Role = tm.Role
	m.Department = tm.Department
	m.Phone = tm.Phone
	m.Skills = tm.Skills
	m.Availability = tm.Availability
	m.JoinedAt = tm.JoinedAt
}

// TeamMemberModelFromDomain creates a new persistence model from a domain TeamMember entity.
func TeamMemberModelFromDomain(tm *identity.TeamMember) *TeamMemberModel {
	m := &TeamMemberModel{}
	m.FromDomain(tm)
	return m
}

// InviteModel is the persistence model for the Invite domain entity.
// Email uniqueness holds among pending invites only; accepted and revoked
// rows stay behind without blocking a fresh invite.
type InviteModel struct {
	AggregateModel
	Name   string                `gorm:"type:varchar(100);not null"`
	Email  string                `gorm:"type:varchar(200);not null;index:idx_invites_pending_email,unique,where:status = 'pending'"`
	Role   identity.Role         `gorm:"type:varchar(50);not null"`
	Status identity.InviteStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for GORM
func (InviteModel) TableName() string {
	return "invites"
}

// ToDomain converts the persistence model to a domain Invite entity.
func (m *InviteModel) ToDomain() *identity.Invite {
	return &identity.Invite{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Email:             m.Email,
		Role:              m.Role,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Invite entity.
func (m *InviteModel) FromDomain(inv *identity.Invite) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.Name = inv.Name
	m.Email = inv.Email
	m.Role = inv.Role
	m.Status = inv.Status
}

// InviteModelFromDomain creates a new persistence model from a domain Invite entity.
func InviteModelFromDomain(inv *identity.Invite) *InviteModel {
	m := &InviteModel{}
	m.FromDomain(inv)
	return m
}
