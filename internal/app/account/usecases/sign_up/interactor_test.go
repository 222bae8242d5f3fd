package sign_up

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/machinery-catalog/internal/app/account/domain"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
	"github.com/light-bringer/machinery-catalog/internal/testutil"
)

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		users := testutil.NewUserStore()
		uc := NewInteractor(users, testutil.NewMockClock())

		u, err := uc.Execute(ctx, &Request{Name: "Asha", Email: " Admin@Example.com ", Password: "s3cret"})
		require.NoError(t, err)

		assert.Equal(t, "admin@example.com", u.Email)
		assert.NotEqual(t, "s3cret", u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))

		cost, err := bcrypt.Cost([]byte(u.PasswordHash))
		require.NoError(t, err)
		assert.Equal(t, HashCost, cost)

		stored, err := users.FindByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, stored.ID)
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := NewInteractor(testutil.NewUserStore(), testutil.NewMockClock())

		_, err := uc.Execute(ctx, &Request{Email: "a@example.com", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	})

	t.Run("email already in use", func(t *testing.T) {
		users := testutil.NewUserStore(&domain.User{ID: "u1", Email: "a@example.com"})
		uc := NewInteractor(users, testutil.NewMockClock())

		_, err := uc.Execute(ctx, &Request{Name: "A", Email: "A@example.com", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrEmailInUse)
		assert.Equal(t, errx.KindConflict, errx.KindOf(err))
	})

	t.Run("store failure", func(t *testing.T) {
		users := testutil.NewUserStore()
		users.FindErr = errors.New("unavailable")
		uc := NewInteractor(users, testutil.NewMockClock())

		_, err := uc.Execute(ctx, &Request{Name: "A", Email: "a@example.com", Password: "x"})
		assert.Equal(t, errx.KindPersistence, errx.KindOf(err))
	})
}
