//go:build unit

package user_test

import (
	"strings"
	"testing"

	"portaria/internal/domain/user"
	"portaria/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			tc.mutate(b)
			profile, err := b.BuildDomain()

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, profile)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, profile)
		})
	}
}

func TestProfile(t *testing.T) {
	t.Run("basic construction", func(t *testing.T) {
		profile, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, profile)

		assert.NotEqual(t, uuid.Nil, profile.ID())
		assert.Equal(t, "Ana Lima", profile.DisplayName().Value())
		assert.Equal(t, "ana@example.com", profile.Email().Value())
		assert.Equal(t, user.RoleRequester, profile.Role())
		assert.True(t, profile.IsActive())
	})

	t.Run("nil id gets generated", func(t *testing.T) {
		profile, err := builder.NewUserBuilder().WithID(uuid.Nil).BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, profile.ID())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("ana@") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "requester",
				mutate: func(b *builder.UserBuilder) { b.WithRole("requester") },
			},
			{
				name:   "gate",
				mutate: func(b *builder.UserBuilder) { b.WithRole("gate") },
			},
			{
				name:   "approver",
				mutate: func(b *builder.UserBuilder) { b.WithRole("approver") },
			},
			{
				name:   "admin",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("janitor") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("display name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "trimmed name",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName("  Carlos  ") },
			},
			{
				name:   "blank name",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName("   ") },
				errIs:  user.ErrEmptyDisplayName,
			},
			{
				name:   "name over limit",
				mutate: func(b *builder.UserBuilder) { b.WithDisplayName(strings.Repeat("a", user.MaxDisplayNameLength+1)) },
				errIs:  user.ErrDisplayNameTooLong,
			},
		})
	})
}

func TestPassword(t *testing.T) {
	t.Run("minimum length enforced", func(t *testing.T) {
		_, err := user.NewPassword("short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)

		p, err := user.NewPassword("longenough")
		require.NoError(t, err)
		assert.Equal(t, "longenough", p.Value())
	})
}

func TestRoleHierarchyValues(t *testing.T) {
	for _, role := range []user.Role{user.RoleRequester, user.RoleGate, user.RoleApprover, user.RoleAdmin} {
		assert.True(t, role.IsValid(), role.String())
	}
	assert.False(t, user.Role("viewer").IsValid())
}
