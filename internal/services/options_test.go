package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/machinery-catalog/internal/config"
	"github.com/light-bringer/machinery-catalog/internal/media"
	"github.com/light-bringer/machinery-catalog/internal/media/cloudinary"
)

func TestOpenMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("none is disabled", func(t *testing.T) {
		host, closeFn, err := openMedia(ctx, config.MediaConfig{Driver: config.MediaNone})
		require.NoError(t, err)
		assert.IsType(t, media.Disabled{}, host)
		closeFn()
	})

	t.Run("cloudinary", func(t *testing.T) {
		host, closeFn, err := openMedia(ctx, config.MediaConfig{
			Driver:              config.MediaCloudinary,
			CloudinaryCloudName: "demo",
			CloudinaryAPIKey:    "key",
			CloudinaryAPISecret: "secret",
		})
		require.NoError(t, err)
		assert.IsType(t, &cloudinary.Host{}, host)
		closeFn()
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, closeFn, err := openMedia(ctx, config.MediaConfig{Driver: "ftp"})
		assert.Error(t, err)
		assert.NotNil(t, closeFn)
	})
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), config.StoreConfig{Driver: "mysql"})
	assert.ErrorContains(t, err, "mysql")
}

func TestStore_CloseWithoutConnections(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.AutoMigrate())
	assert.NotPanics(t, s.Close)
}
