package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

func TestProduct_Clone(t *testing.T) {
	orig := &Product{
		ID:             "p1",
		Price:          strPtr("$10"),
		Features:       []string{"a"},
		Specifications: map[string]string{"Weight": "1 kg"},
	}

	cp := orig.Clone()
	*cp.Price = "$20"
	cp.Features[0] = "b"
	cp.Specifications["Weight"] = "2 kg"

	assert.Equal(t, "$10", *orig.Price)
	assert.Equal(t, "a", orig.Features[0])
	assert.Equal(t, "1 kg", orig.Specifications["Weight"])
}

func TestParseMediaKind(t *testing.T) {
	assert.Equal(t, MediaImage, ParseMediaKind("image"))
	assert.Equal(t, MediaVideo, ParseMediaKind("video"))
	assert.Equal(t, MediaNone, ParseMediaKind("raw"))
}

func TestDomainErrors(t *testing.T) {
	assert.Equal(t, errx.KindValidation, errx.KindOf(ErrRequiredFieldsMissing))
	assert.Equal(t, errx.KindValidation, errx.KindOf(ErrMediaTooLong))

	err := fmt.Errorf("failed to load product: %w", ErrProductNotFound)
	assert.Equal(t, errx.KindNotFound, errx.KindOf(err))
	assert.ErrorIs(t, err, ErrProductNotFound)
}
