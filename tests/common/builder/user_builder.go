//go:build unit || e2e

package builder

import (
	"time"

	"portaria/internal/domain/user"
	"portaria/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	DisplayName  string
	Email        string
	Role         string
	PasswordHash string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		DisplayName:  "Ana Lima",
		Email:        "ana@example.com",
		Role:         "requester",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.Profile, error) {
	displayName, err := user.NewDisplayName(u.DisplayName)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewProfile(u.ID, displayName, email, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildRM() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        u.Role,
		IsActive:    u.IsActive,
		CreatedAt:   time.Now(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithIsActive(active bool) *UserBuilder {
	u.IsActive = active
	return u
}

func (u *UserBuilder) AsApprover() *UserBuilder {
	u.Role = "approver"
	return u
}

func (u *UserBuilder) AsGate() *UserBuilder {
	u.Role = "gate"
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}
