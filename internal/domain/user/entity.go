package user

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the minimal identity record referenced by schedules. It is
// created lazily the first time a schedule names an unknown actor id.
type Profile struct {
	id           uuid.UUID
	displayName  DisplayName
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProfile(id uuid.UUID, displayName DisplayName, email Email, passwordHash string, role Role) *Profile {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Profile{
		id:           id,
		displayName:  displayName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructProfile(
	id uuid.UUID,
	displayName DisplayName,
	email Email,
	passwordHash string,
	role Role,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Profile {
	return &Profile{
		id:           id,
		displayName:  displayName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Profile) ID() uuid.UUID            { return p.id }
func (p *Profile) DisplayName() DisplayName { return p.displayName }
func (p *Profile) Email() Email             { return p.email }
func (p *Profile) PasswordHash() string     { return p.passwordHash }
func (p *Profile) Role() Role               { return p.role }
func (p *Profile) IsActive() bool           { return p.isActive }
func (p *Profile) CreatedAt() time.Time     { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time     { return p.updatedAt }
