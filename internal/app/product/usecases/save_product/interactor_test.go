package save_product

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
	"github.com/light-bringer/machinery-catalog/internal/testutil"
)

var (
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
)

func strPtr(s string) *string { return &s }

func validRequest() *Request {
	return &Request{
		Name:        "NylonSpinner 3000 Pro",
		Description: "High-speed nylon spinning machine",
		Category:    "Spinning Machines",
		InStock:     true,
	}
}

type fixture struct {
	store *testutil.ProductStore
	media *testutil.MediaHost
	uc    *Interactor
}

func setup(t *testing.T, policy Policy, products ...*domain.Product) *fixture {
	t.Helper()
	store := testutil.NewProductStore(products...)
	media := testutil.NewMediaHost()
	clk := testutil.NewMockClock()
	return &fixture{
		store: store,
		media: media,
		uc:    NewInteractor(store, media, clk, policy, nil),
	}
}

func TestExecute_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("empty name is rejected before any store or media call", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), testutil.NewProductBuilder("p1").Build())
		req := validRequest()
		req.ProductID = "p1"
		req.Name = ""
		req.Price = strPtr("$10")
		req.File = &File{Data: pngBytes}

		_, err := f.uc.Execute(ctx, req)

		require.ErrorIs(t, err, domain.ErrRequiredFieldsMissing)
		assert.Equal(t, errx.KindValidation, errx.KindOf(err))
		assert.Empty(t, f.store.Calls)
		assert.Empty(t, f.media.Calls)
	})

	t.Run("whitespace-only category counts as missing", func(t *testing.T) {
		f := setup(t, DefaultPolicy())
		req := validRequest()
		req.Category = "   "

		_, err := f.uc.Execute(ctx, req)
		assert.ErrorIs(t, err, domain.ErrRequiredFieldsMissing)
	})

	t.Run("media optional on create by default", func(t *testing.T) {
		f := setup(t, DefaultPolicy())

		p, err := f.uc.Execute(ctx, validRequest())
		require.NoError(t, err)
		assert.True(t, p.Media.IsEmpty())
	})

	t.Run("media required on create when configured", func(t *testing.T) {
		f := setup(t, Policy{RequireMediaOnCreate: true})

		_, err := f.uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, domain.ErrMediaRequired)

		req := validRequest()
		req.MediaURL = "https://cdn.example.com/spinner.png"
		_, err = f.uc.Execute(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("media rule does not apply to updates", func(t *testing.T) {
		f := setup(t, Policy{RequireMediaOnCreate: true}, testutil.NewProductBuilder("p1").Build())
		req := validRequest()
		req.ProductID = "p1"

		_, err := f.uc.Execute(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("file over the size limit", func(t *testing.T) {
		f := setup(t, Policy{MaxUploadBytes: int64(len(pngBytes) - 1)})
		req := validRequest()
		req.File = &File{Data: pngBytes}

		_, err := f.uc.Execute(ctx, req)
		assert.ErrorIs(t, err, domain.ErrMediaTooLarge)
		assert.Empty(t, f.media.Calls)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		f := setup(t, DefaultPolicy())
		req := validRequest()
		req.File = &File{Filename: "spinner.png", Data: []byte("definitely not an image")}

		_, err := f.uc.Execute(ctx, req)
		assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
		assert.Empty(t, f.media.Calls)
	})

	t.Run("video longer than the ceiling", func(t *testing.T) {
		tests := []struct {
			name string
			file *File
		}{
			{"mp4 header over, nothing declared", &File{Data: testutil.MP4(15.5)}},
			{"webm header over, nothing declared", &File{Data: testutil.WebM(3600)}},
			{"header over, short length declared", &File{Data: testutil.MP4(600), DurationSeconds: 5}},
			{"header within, longer length declared", &File{Data: testutil.MP4(10), DurationSeconds: 15.5}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := setup(t, DefaultPolicy())
				req := validRequest()
				req.File = tt.file

				_, err := f.uc.Execute(ctx, req)
				assert.ErrorIs(t, err, domain.ErrMediaTooLong)
				assert.Equal(t, errx.KindValidation, errx.KindOf(err))
				assert.Empty(t, f.store.Calls)
				assert.Empty(t, f.media.Calls)
			})
		}
	})

	t.Run("video without a readable duration", func(t *testing.T) {
		tests := []struct {
			name string
			file *File
		}{
			{"mp4 without movie header", &File{Data: testutil.MP4NoDuration}},
			{"webm without duration", &File{Data: testutil.WebM(-1)}},
			{"negative declared length", &File{Data: testutil.MP4(10), DurationSeconds: -3600}},
			{"NaN declared length", &File{Data: testutil.MP4(10), DurationSeconds: math.NaN()}},
			{"infinite declared length", &File{Data: testutil.MP4(10), DurationSeconds: math.Inf(1)}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := setup(t, DefaultPolicy())
				req := validRequest()
				req.File = tt.file

				_, err := f.uc.Execute(ctx, req)
				assert.ErrorIs(t, err, domain.ErrMediaDurationUnknown)
				assert.Empty(t, f.store.Calls)
				assert.Empty(t, f.media.Calls)
			})
		}
	})

	t.Run("video at the ceiling is accepted", func(t *testing.T) {
		for _, data := range [][]byte{testutil.MP4(15), testutil.WebM(15)} {
			f := setup(t, DefaultPolicy())
			req := validRequest()
			req.File = &File{Data: data}

			p, err := f.uc.Execute(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, domain.MediaVideo, p.Media.Kind)
		}
	})
}

func TestExecute_Create(t *testing.T) {
	ctx := context.Background()
	f := setup(t, DefaultPolicy())

	req := validRequest()
	req.Name = "  NylonSpinner 3000 Pro  "
	req.Price = strPtr("$45,000")
	req.OriginalPrice = strPtr("$52,000")
	req.Features = []string{"Touch screen interface", " ", ""}
	req.Specifications = map[string]string{"Weight": "1200 kg", "Power": " "}
	req.File = &File{Filename: "spinner.png", Data: pngBytes}

	p, err := f.uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "NylonSpinner 3000 Pro", p.Name)
	assert.Equal(t, []string{"Touch screen interface"}, p.Features)
	assert.Equal(t, map[string]string{"Weight": "1200 kg"}, p.Specifications)
	assert.Equal(t, 13, p.Discount)
	assert.Equal(t, testutil.FixedTime, p.CreatedAt)

	assert.Equal(t, domain.MediaImage, p.Media.Kind)
	assert.True(t, strings.HasPrefix(p.Media.AssetID, AssetIDPrefix))
	assert.Equal(t, []string{"upload"}, f.media.Ops())

	stored := f.store.Get(p.ID)
	require.NotNil(t, stored)
	assert.Equal(t, p.Media, stored.Media)
}

func TestExecute_UpdateReplacesMedia(t *testing.T) {
	ctx := context.Background()
	existing := testutil.NewProductBuilder("p1").
		WithMedia(domain.MediaImage, "https://media.test/image/old123", "old123").
		Build()

	t.Run("uploads new file then deletes the old asset", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), existing)
		req := validRequest()
		req.ProductID = "p1"
		req.File = &File{Data: pngBytes}

		p, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)

		require.Equal(t, []string{"upload", "delete"}, f.media.Ops())
		assert.Equal(t, "old123", f.media.Calls[1].AssetID)
		assert.Equal(t, domain.MediaImage, f.media.Calls[1].Kind)
		assert.NotEqual(t, "old123", p.Media.AssetID)
		assert.Equal(t, p.Media, f.store.Get("p1").Media)
	})

	t.Run("failed cleanup does not fail the update", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), existing)
		f.media.DeleteErr = errors.New("host unavailable")
		req := validRequest()
		req.ProductID = "p1"
		req.File = &File{Data: pngBytes}

		p, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, []string{"upload", "delete"}, f.media.Ops())
		assert.NotEqual(t, "old123", p.Media.AssetID)
		assert.Equal(t, p.Media.AssetID, f.store.Get("p1").Media.AssetID)
	})

	t.Run("reusing the same asset id skips the delete", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), existing)
		req := validRequest()
		req.ProductID = "p1"
		req.MediaAssetID = "old123"
		req.File = &File{Data: pngBytes}

		p, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, []string{"upload"}, f.media.Ops())
		assert.Equal(t, "old123", p.Media.AssetID)
	})

	t.Run("reusing the asset id for another kind deletes the old asset", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), existing)
		req := validRequest()
		req.ProductID = "p1"
		req.MediaAssetID = "old123"
		req.File = &File{Data: testutil.MP4(10)}

		p, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)

		require.Equal(t, []string{"upload", "delete"}, f.media.Ops())
		assert.Equal(t, domain.MediaVideo, f.media.Calls[0].Kind)
		assert.Equal(t, "old123", f.media.Calls[1].AssetID)
		assert.Equal(t, domain.MediaImage, f.media.Calls[1].Kind)
		assert.Equal(t, "old123", p.Media.AssetID)
		assert.Equal(t, domain.MediaVideo, p.Media.Kind)
	})

	t.Run("upload failure aborts without touching the record", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), existing)
		f.media.UploadErr = errors.New("timeout")
		req := validRequest()
		req.ProductID = "p1"
		req.Name = "Renamed"
		req.File = &File{Data: pngBytes}

		_, err := f.uc.Execute(ctx, req)
		require.Error(t, err)

		assert.Equal(t, errx.KindExternal, errx.KindOf(err))
		assert.Equal(t, []string{"upload"}, f.media.Ops())
		assert.NotContains(t, f.store.Calls, "Upsert")
		assert.Equal(t, existing.Name, f.store.Get("p1").Name)
	})

	t.Run("store failure after upload is a persistence error", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), existing)
		f.store.UpsertErr = errors.New("connection reset")
		req := validRequest()
		req.ProductID = "p1"
		req.File = &File{Data: pngBytes}

		_, err := f.uc.Execute(ctx, req)
		require.Error(t, err)
		assert.Equal(t, errx.KindPersistence, errx.KindOf(err))
	})
}

func TestExecute_Update(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)
	existing := testutil.NewProductBuilder("p1").
		CreatedAt(created).
		WithMedia(domain.MediaVideo, "https://media.test/video/vid1", "vid1").
		Build()

	t.Run("missing product", func(t *testing.T) {
		f := setup(t, DefaultPolicy())
		req := validRequest()
		req.ProductID = "nope"

		_, err := f.uc.Execute(ctx, req)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Empty(t, f.media.Calls)
	})

	t.Run("keeps media and creation time when none supplied", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), existing)
		req := validRequest()
		req.ProductID = "p1"
		req.Name = "TwistMaster 2500"

		p, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, "TwistMaster 2500", p.Name)
		assert.Equal(t, existing.Media, p.Media)
		assert.Equal(t, created, p.CreatedAt)
		assert.Equal(t, testutil.FixedTime, p.UpdatedAt)
		assert.Empty(t, f.media.Calls)
	})

	t.Run("new URL is adopted verbatim without an asset id", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), existing)
		req := validRequest()
		req.ProductID = "p1"
		req.MediaURL = "https://example.com/brochure.jpg"

		p, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, "https://example.com/brochure.jpg", p.Media.URL)
		assert.Empty(t, p.Media.AssetID)
		assert.Equal(t, domain.MediaImage, p.Media.Kind)
		assert.Empty(t, f.media.Calls)
	})

	t.Run("URL with explicit asset id keeps it", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), existing)
		req := validRequest()
		req.ProductID = "p1"
		req.MediaURL = "https://media.test/image/abc"
		req.MediaAssetID = "abc"

		p, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "abc", p.Media.AssetID)
	})

	t.Run("resubmitting the current URL keeps its asset", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), existing)
		req := validRequest()
		req.ProductID = "p1"
		req.MediaURL = existing.Media.URL

		p, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, existing.Media, p.Media)
	})

	t.Run("caller discount kept when prices do not imply one", func(t *testing.T) {
		f := setup(t, DefaultPolicy(), existing)
		req := validRequest()
		req.ProductID = "p1"
		req.Price = strPtr("52000")
		req.OriginalPrice = strPtr("45000")
		req.Discount = 0

		p, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Discount)
	})
}
