package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		in    *string
		want  string
		valid bool
	}{
		{"nil", nil, "0", false},
		{"empty", strPtr(""), "0", false},
		{"currency and separators", strPtr("$45,000"), "45000", true},
		{"decimals kept", strPtr("₹ 1,299.50"), "1299.5", true},
		{"only letters", strPtr("on request"), "0", false},
		{"two dots", strPtr("1.2.3"), "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDeriveDiscount(t *testing.T) {
	t.Run("original above price rounds to nearest percent", func(t *testing.T) {
		assert.Equal(t, 13, DeriveDiscount(strPtr("45000"), strPtr("52000"), 0))
	})

	t.Run("display strings are parsed", func(t *testing.T) {
		assert.Equal(t, 13, DeriveDiscount(strPtr("$45,000"), strPtr("$52,000"), 0))
	})

	t.Run("half rounds up", func(t *testing.T) {
		// 100 * 1 / 8 = 12.5
		assert.Equal(t, 13, DeriveDiscount(strPtr("7"), strPtr("8"), 0))
	})

	t.Run("price at or above original keeps supplied value", func(t *testing.T) {
		assert.Equal(t, 0, DeriveDiscount(strPtr("52000"), strPtr("45000"), 0))
		assert.Equal(t, 0, DeriveDiscount(strPtr("100"), strPtr("100"), 0))
		assert.Equal(t, 5, DeriveDiscount(strPtr("52000"), strPtr("45000"), 5))
	})

	t.Run("missing price keeps supplied value", func(t *testing.T) {
		assert.Equal(t, 7, DeriveDiscount(nil, strPtr("100"), 7))
		assert.Equal(t, 7, DeriveDiscount(strPtr("90"), nil, 7))
	})

	t.Run("free item is a full discount", func(t *testing.T) {
		assert.Equal(t, 100, DeriveDiscount(strPtr("0"), strPtr("250"), 0))
	})
}
