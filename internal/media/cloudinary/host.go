// Package cloudinary stores product media on Cloudinary.
package cloudinary

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

// DefaultFolder is the folder product media is uploaded to.
const DefaultFolder = "products"

// Config holds the account credentials.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// uploadAPI is the subset of uploader.API the host calls.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// Host implements contracts.MediaHost.
type Host struct {
	api    uploadAPI
	folder string
}

var _ contracts.MediaHost = (*Host)(nil)

// New creates a Host from account credentials.
func New(cfg Config) (*Host, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return newHost(&cld.Upload, cfg.Folder), nil
}

func newHost(a uploadAPI, folder string) *Host {
	if folder == "" {
		folder = DefaultFolder
	}
	return &Host{api: a, folder: folder}
}

// Upload stores the file under folder/PublicID, overwriting an existing asset
// with the same id. The returned AssetID includes the folder.
func (h *Host) Upload(ctx context.Context, in contracts.UploadInput) (contracts.UploadResult, error) {
	res, err := h.api.Upload(ctx, bytes.NewReader(in.Data), uploader.UploadParams{
		PublicID:     strings.TrimPrefix(in.PublicID, h.folder+"/"),
		Folder:       h.folder,
		ResourceType: resourceType(in.Kind),
		Overwrite:    api.Bool(true),
		Invalidate:   api.Bool(true),
	})
	if err != nil {
		return contracts.UploadResult{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return contracts.UploadResult{}, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return contracts.UploadResult{}, fmt.Errorf("cloudinary upload: empty url in response")
	}

	return contracts.UploadResult{URL: res.SecureURL, AssetID: res.PublicID}, nil
}

// Delete destroys the asset. An asset that is already gone counts as deleted.
func (h *Host) Delete(ctx context.Context, assetID string, kind domain.MediaKind) error {
	res, err := h.api.Destroy(ctx, uploader.DestroyParams{
		PublicID:     assetID,
		ResourceType: resourceType(kind),
		Invalidate:   api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", res.Error.Message)
	}
	switch res.Result {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("cloudinary destroy: unexpected result %q", res.Result)
	}
}

func resourceType(kind domain.MediaKind) string {
	if kind == domain.MediaVideo {
		return "video"
	}
	return "image"
}
