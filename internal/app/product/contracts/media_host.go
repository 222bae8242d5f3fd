package contracts

import (
	"context"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

// UploadInput is a file to store on the media host.
type UploadInput struct {
	Data        []byte
	PublicID    string // desired asset id; hosts may normalize it
	Kind        domain.MediaKind
	ContentType string
}

// UploadResult is what the host reports for a stored file.
type UploadResult struct {
	URL     string
	AssetID string
}

// MediaHost stores product media outside the service.
// Calls are remote and may fail.
type MediaHost interface {
	Upload(ctx context.Context, in UploadInput) (UploadResult, error)
	Delete(ctx context.Context, assetID string, kind domain.MediaKind) error
}
