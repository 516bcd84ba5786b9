//go:build unit || e2e

package dbtest

import (
	"context"
	"sync"
	"testing"
	"time"

	"portaria/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	hashOnce     sync.Once
	passwordHash string
)

// TestPassword is the plaintext behind every fixture profile.
const TestPassword = "password123"

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		var err error
		passwordHash, err = password.HashPassword(TestPassword)
		require.NoError(t, err)
	})
	return passwordHash
}

func CreateTestProfile(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	profileID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO profiles (id, display_name, email, role, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (email) DO NOTHING`,
		profileID, "Test "+role, email, role, testPasswordHash(t))
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM profiles WHERE email = $1", email).Scan(&profileID)
	}

	return profileID
}

func DeactivateProfile(t *testing.T, db DBLike, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE profiles SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

// ResetDB truncates every table so each subtest starts clean.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE TABLE schedules, profiles CASCADE")
	return err
}
