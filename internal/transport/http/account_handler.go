package http

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/light-bringer/machinery-catalog/internal/app/account/usecases/sign_in"
	"github.com/light-bringer/machinery-catalog/internal/app/account/usecases/sign_up"
)

// AccountHandler serves credential checks and registration.
type AccountHandler struct {
	signIn *sign_in.Interactor
	signUp *sign_up.Interactor
	logger *zap.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(signIn *sign_in.Interactor, signUp *sign_up.Interactor, logger *zap.Logger) *AccountHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountHandler{signIn: signIn, signUp: signUp, logger: logger}
}

type signInPayload struct {
	Email    string `json:"email" validate:"max=320"`
	Password string `json:"password" validate:"max=128"`
}

type signUpPayload struct {
	Name     string `json:"name" validate:"max=200"`
	Email    string `json:"email" validate:"omitempty,email,max=320"`
	Password string `json:"password" validate:"max=128"`
}

// SignIn handles POST /api/signin.
func (h *AccountHandler) SignIn(c echo.Context) error {
	var payload signInPayload
	if err := bindAndValidate(c, &payload); err != nil {
		return respondError(c, h.logger, err)
	}

	user, err := h.signIn.Execute(c.Request().Context(), &sign_in.Request{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return ok(c, toUserDTO(user))
}

// SignUp handles POST /api/signup.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var payload signUpPayload
	if err := bindAndValidate(c, &payload); err != nil {
		return respondError(c, h.logger, err)
	}

	user, err := h.signUp.Execute(c.Request().Context(), &sign_up.Request{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	h.logger.Info("account created", zap.String("user_id", user.ID))
	return created(c, toUserDTO(user))
}
