package videometa

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/machinery-catalog/internal/testutil"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        []byte
		want        time.Duration
	}{
		{"mp4", "video/mp4", testutil.MP4(12.5), 12500 * time.Millisecond},
		{"long mp4", "video/mp4", testutil.MP4(3600), time.Hour},
		{"webm", "video/webm", testutil.WebM(14), 14 * time.Second},
		{"long webm", "video/webm", testutil.WebM(90), 90 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Duration(tt.contentType, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuration_Unreadable(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        []byte
	}{
		{"mp4 without movie header", "video/mp4", testutil.MP4NoDuration},
		{"mp4 with zero duration", "video/mp4", testutil.MP4(0)},
		{"webm without duration", "video/webm", testutil.WebM(-1)},
		{"truncated", "video/mp4", []byte{0x00, 0x00}},
		{"image", "image/png", []byte("\x89PNG\r\n\x1a\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Duration(tt.contentType, tt.data)
			assert.Error(t, err)
		})
	}
}

func TestToDuration(t *testing.T) {
	_, err := toDuration(-1)
	assert.ErrorIs(t, err, ErrNoDuration)
	_, err = toDuration(1e300)
	assert.ErrorIs(t, err, ErrNoDuration)

	d, err := toDuration(1.5)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)
}
