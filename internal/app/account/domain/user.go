package domain

import (
	"strings"
	"time"

	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// User is an account that can sign in to the admin area.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var (
	ErrMissingCredentials = errx.New(errx.KindValidation, "email and password are required")
	ErrMissingFields      = errx.New(errx.KindValidation, "name, email and password are required")
	ErrUserNotFound       = errx.New(errx.KindNotFound, "user not found")
	ErrInvalidPassword    = errx.New(errx.KindUnauthorized, "invalid password")
	ErrEmailInUse         = errx.New(errx.KindConflict, "email already in use")
)
