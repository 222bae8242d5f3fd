package sign_up

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/machinery-catalog/internal/app/account/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/account/domain"
	"github.com/light-bringer/machinery-catalog/internal/pkg/clock"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// HashCost is the bcrypt cost for new passwords.
const HashCost = 10

// Request contains the new account details.
type Request struct {
	Name     string
	Email    string
	Password string
}

// Interactor registers new accounts.
type Interactor struct {
	users contracts.UserRepository
	clock clock.Clock
}

// NewInteractor creates a new sign up interactor.
func NewInteractor(users contracts.UserRepository, clock clock.Clock) *Interactor {
	return &Interactor{users: users, clock: clock}
}

// Execute creates the user. The email must not be registered yet.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.User, error) {
	// 1. Validate request
	name := strings.TrimSpace(req.Name)
	email := domain.NormalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, domain.ErrMissingFields
	}

	// 2. Reject duplicate email
	_, err := i.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailInUse
	case errx.KindOf(err) != errx.KindNotFound:
		return nil, errx.Wrap(errx.KindPersistence, "failed to look up user", err)
	}

	// 3. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), HashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// 4. Store user
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    i.clock.Now(),
	}
	if err := i.users.Create(ctx, user); err != nil {
		if errx.KindOf(err) == errx.KindConflict {
			return nil, err
		}
		return nil, errx.Wrap(errx.KindPersistence, "failed to create user", err)
	}

	return user, nil
}
