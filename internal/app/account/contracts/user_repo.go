package contracts

import (
	"context"

	"github.com/light-bringer/machinery-catalog/internal/app/account/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create stores a new user. It returns domain.ErrEmailInUse on a duplicate email.
	Create(ctx context.Context, user *domain.User) error
}
