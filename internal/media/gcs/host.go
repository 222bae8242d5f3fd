// Package gcs stores product media in a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
)

// DefaultPrefix is the object name prefix for product media.
const DefaultPrefix = "products"

// PublicBaseURL is where public objects are served from.
const PublicBaseURL = "https://storage.googleapis.com"

// Host implements contracts.MediaHost. Objects are expected to be publicly
// readable through bucket IAM; the host does not set ACLs.
type Host struct {
	bucket     *storage.BucketHandle
	bucketName string
	prefix     string
}

var _ contracts.MediaHost = (*Host)(nil)

// New creates a Host writing to bucketName under prefix.
func New(client *storage.Client, bucketName, prefix string) *Host {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Host{
		bucket:     client.Bucket(bucketName),
		bucketName: bucketName,
		prefix:     strings.Trim(prefix, "/"),
	}
}

// Upload writes the object and returns its public URL. The AssetID is the
// object name.
func (h *Host) Upload(ctx context.Context, in contracts.UploadInput) (contracts.UploadResult, error) {
	name := h.objectName(in.PublicID)

	w := h.bucket.Object(name).NewWriter(ctx)
	w.ContentType = in.ContentType
	w.Metadata = map[string]string{"media_kind": string(in.Kind)}

	if _, err := w.Write(in.Data); err != nil {
		_ = w.Close()
		return contracts.UploadResult{}, fmt.Errorf("gcs write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return contracts.UploadResult{}, fmt.Errorf("gcs write %s: %w", name, err)
	}

	return contracts.UploadResult{URL: h.publicURL(name), AssetID: name}, nil
}

// Delete removes the object. A missing object counts as deleted.
func (h *Host) Delete(ctx context.Context, assetID string, _ domain.MediaKind) error {
	err := h.bucket.Object(assetID).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs delete %s: %w", assetID, err)
	}
	return nil
}

func (h *Host) objectName(publicID string) string {
	return path.Join(h.prefix, strings.TrimPrefix(publicID, h.prefix+"/"))
}

func (h *Host) publicURL(name string) string {
	return PublicBaseURL + "/" + h.bucketName + "/" + (&url.URL{Path: name}).EscapedPath()
}
