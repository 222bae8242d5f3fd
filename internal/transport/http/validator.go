package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// requestValidator adapts validator/v10 to echo.Validator.
type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{v: validator.New()}
}

// Validate returns a Validation error naming the first failing field.
func (rv *requestValidator) Validate(i interface{}) error {
	if err := rv.v.Struct(i); err != nil {
		if verrs, isVerr := err.(validator.ValidationErrors); isVerr && len(verrs) > 0 {
			return errx.Wrap(errx.KindValidation, "invalid "+verrs[0].Field(), err)
		}
		return errx.Wrap(errx.KindValidation, "invalid request", err)
	}
	return nil
}

// bindAndValidate decodes the body into dst and validates it.
func bindAndValidate(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return errx.Wrap(errx.KindValidation, "malformed request body", err)
	}
	return c.Validate(dst)
}
