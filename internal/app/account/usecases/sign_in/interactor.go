package sign_in

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/machinery-catalog/internal/app/account/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/account/domain"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// Request contains sign-in credentials.
type Request struct {
	Email    string
	Password string
}

// Interactor checks credentials against the user store.
type Interactor struct {
	users contracts.UserRepository
}

// NewInteractor creates a new sign in interactor.
func NewInteractor(users contracts.UserRepository) *Interactor {
	return &Interactor{users: users}
}

// Execute returns the user when the password matches the stored hash.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.User, error) {
	// 1. Validate request
	email := domain.NormalizeEmail(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, domain.ErrMissingCredentials
	}

	// 2. Look up user
	user, err := i.users.FindByEmail(ctx, email)
	if err != nil {
		if errx.KindOf(err) == errx.KindNotFound {
			return nil, err
		}
		return nil, errx.Wrap(errx.KindPersistence, "failed to look up user", err)
	}

	// 3. Compare password hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidPassword
	}

	return user, nil
}
