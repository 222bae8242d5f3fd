package domain

import "github.com/light-bringer/machinery-catalog/internal/pkg/errx"

// Validation errors
var (
	ErrRequiredFieldsMissing = errx.New(errx.KindValidation, "required fields missing")
	ErrMediaRequired         = errx.New(errx.KindValidation, "media required")
	ErrUnsupportedMediaType  = errx.New(errx.KindValidation, "unsupported media type")
	ErrMediaTooLarge         = errx.New(errx.KindValidation, "media too large")
	ErrMediaTooLong          = errx.New(errx.KindValidation, "media too long")
	ErrMediaDurationUnknown  = errx.New(errx.KindValidation, "video duration could not be read")
	ErrExcludeIDRequired     = errx.New(errx.KindValidation, "excludeId is required")
)

// Lookup errors
var (
	ErrProductNotFound = errx.New(errx.KindNotFound, "product not found")
)
