package repository

import (
	"context"

	"portaria/internal/domain/user"
	"portaria/internal/infra"
	"portaria/internal/pkg/pgconv"
	"portaria/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	db DB
}

func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, display_name, email, role, is_active, created_at`

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)

	var rm readmodel.AuthorizedUserRM
	err := row.Scan(&rm.ID, &rm.DisplayName, &rm.Email, &rm.Role, &rm.IsActive, &rm.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile by ID", err)
	}

	return &rm, nil
}

// FindByEmail also returns the password hash for credential checks; only
// active profiles can log in.
func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+`, password_hash FROM profiles WHERE email = $1 AND is_active = true`,
		email,
	)

	var rm readmodel.AuthorizedUserRM
	var passwordHash string
	err := row.Scan(&rm.ID, &rm.DisplayName, &rm.Email, &rm.Role, &rm.IsActive, &rm.CreatedAt, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find profile by email", err)
	}

	return &rm, passwordHash, nil
}

func (r *ProfileRepository) Insert(ctx context.Context, p *user.Profile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO profiles (id, display_name, email, role, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID(), p.DisplayName().Value(), p.Email().Value(), p.Role().String(),
		p.PasswordHash(), p.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert profile", err, classifyPgErr(err))
	}

	return nil
}
