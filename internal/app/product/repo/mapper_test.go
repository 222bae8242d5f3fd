package repo

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/testutil"
)

func fullProduct() *domain.Product {
	p := testutil.NewProductBuilder("p1").
		WithPrice("$45,000", "$52,000").
		WithMedia(domain.MediaVideo, "https://media.test/video/product_1", "product_1").
		Featured().
		Build()
	p.Features = []string{"Auto tension", "Touch panel"}
	p.Specifications = map[string]string{"Power": "15 kW", "Weight": "1200 kg"}
	p.Discount = 13
	p.Rating = 4.8
	p.Reviews = 24
	return p
}

func TestSpannerMapping_RoundTrip(t *testing.T) {
	p := fullProduct()

	data := domainToData(p)
	assert.Equal(t, "$45,000", data.Price.StringVal)
	assert.True(t, data.MediaAssetID.Valid)
	assert.Equal(t, "video", data.MediaKind.StringVal)

	// Spanner hands JSON back as a generic map.
	data.Specifications = spanner.NullJSON{
		Value: map[string]interface{}{"Power": "15 kW", "Weight": "1200 kg"},
		Valid: true,
	}

	got, err := dataToDomain(data)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSpannerMapping_NoMedia(t *testing.T) {
	p := testutil.NewProductBuilder("p2").Build()

	data := domainToData(p)
	assert.False(t, data.MediaURL.Valid)
	assert.False(t, data.MediaKind.Valid)
	assert.False(t, data.Price.Valid)
	assert.False(t, data.Specifications.Valid)

	got, err := dataToDomain(data)
	require.NoError(t, err)
	assert.True(t, got.Media.IsEmpty())
	assert.Nil(t, got.Price)
	assert.Nil(t, got.Specifications)
}

func TestSpannerMapping_URLWithoutAsset(t *testing.T) {
	p := testutil.NewProductBuilder("p3").
		WithMedia(domain.MediaImage, "https://example.com/a.png", "").
		Build()

	data := domainToData(p)
	assert.True(t, data.MediaURL.Valid)
	assert.False(t, data.MediaAssetID.Valid)

	got, err := dataToDomain(data)
	require.NoError(t, err)
	assert.False(t, got.Media.HasAsset())
	assert.Equal(t, domain.MediaImage, got.Media.Kind)
}

func TestSpannerMapping_BadSpecifications(t *testing.T) {
	data := domainToData(testutil.NewProductBuilder("p4").Build())
	data.Specifications = spanner.NullJSON{Value: []interface{}{"x"}, Valid: true}

	_, err := dataToDomain(data)
	assert.Error(t, err)
}

func TestGormMapping_RoundTrip(t *testing.T) {
	p := fullProduct()

	rec, err := domainToRecord(p)
	require.NoError(t, err)
	assert.JSONEq(t, `["Auto tension","Touch panel"]`, string(rec.Features))
	require.NotNil(t, rec.MediaAssetID)
	assert.Equal(t, "product_1", *rec.MediaAssetID)

	got, err := recordToDomain(rec)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestGormMapping_EmptyFeatures(t *testing.T) {
	p := testutil.NewProductBuilder("p5").Build()

	rec, err := domainToRecord(p)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(rec.Features))
	assert.Nil(t, rec.MediaURL)

	got, err := recordToDomain(rec)
	require.NoError(t, err)
	assert.Empty(t, got.Features)
	assert.True(t, got.Media.IsEmpty())
}
