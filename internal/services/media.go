package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"

	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	"github.com/light-bringer/machinery-catalog/internal/config"
	"github.com/light-bringer/machinery-catalog/internal/media"
	"github.com/light-bringer/machinery-catalog/internal/media/cloudinary"
	"github.com/light-bringer/machinery-catalog/internal/media/gcs"
)

// openMedia builds the MediaHost named by cfg.Driver. The returned close
// function is never nil.
func openMedia(ctx context.Context, cfg config.MediaConfig) (contracts.MediaHost, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case config.MediaCloudinary:
		host, err := cloudinary.New(cloudinary.Config{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
			Folder:    cfg.Folder,
		})
		if err != nil {
			return nil, noop, err
		}
		return host, noop, nil

	case config.MediaGCS:
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create storage client: %w", err)
		}
		return gcs.New(client, cfg.GCSBucket, cfg.Folder), func() { _ = client.Close() }, nil

	case config.MediaNone, "":
		return media.Disabled{}, noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown media driver %q", cfg.Driver)
	}
}
