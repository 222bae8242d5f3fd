package save_product

import "time"

const (
	DefaultMaxUploadBytes   int64 = 10 << 20
	DefaultMaxVideoDuration       = 15 * time.Second
)

// Policy holds the configurable write rules.
type Policy struct {
	MaxUploadBytes       int64
	MaxVideoDuration     time.Duration
	RequireMediaOnCreate bool
}

// DefaultPolicy returns the limits used when none are configured.
func DefaultPolicy() Policy {
	return Policy{
		MaxUploadBytes:   DefaultMaxUploadBytes,
		MaxVideoDuration: DefaultMaxVideoDuration,
	}
}

func (p Policy) withDefaults() Policy {
	if p.MaxUploadBytes <= 0 {
		p.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if p.MaxVideoDuration <= 0 {
		p.MaxVideoDuration = DefaultMaxVideoDuration
	}
	return p
}
