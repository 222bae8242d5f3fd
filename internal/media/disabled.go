// Package media holds the MediaHost implementations that need no remote service.
// Remote hosts live in the cloudinary and gcs subpackages.
package media

import (
	"context"
	"errors"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

// ErrDisabled is returned by every call on a Disabled host.
var ErrDisabled = errors.New("media host is not configured")

// Disabled is the MediaHost used when MEDIA_DRIVER=none. Products can still
// reference external URLs; uploads and asset deletes fail.
type Disabled struct{}

var _ contracts.MediaHost = Disabled{}

func (Disabled) Upload(context.Context, contracts.UploadInput) (contracts.UploadResult, error) {
	return contracts.UploadResult{}, ErrDisabled
}

func (Disabled) Delete(context.Context, string, domain.MediaKind) error {
	return ErrDisabled
}
