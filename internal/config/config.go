// Package config loads service configuration from the environment.
// A .env file is read first when present; real environment variables win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/light-bringer/machinery-catalog/internal/pkg/logger"
)

// Environment is the deployment stage.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

// Store drivers.
const (
	StoreSpanner  = "spanner"
	StorePostgres = "postgres"
)

// Media drivers.
const (
	MediaCloudinary = "cloudinary"
	MediaGCS        = "gcs"
	MediaNone       = "none"
)

// Config is the full service configuration.
type Config struct {
	Environment Environment `default:"development"`

	HTTP   HTTPConfig
	GRPC   GRPCConfig
	Store  StoreConfig
	Media  MediaConfig
	Upload UploadConfig
	Log    logger.Config
	Admin  AdminConfig
}

type HTTPConfig struct {
	Addr            string        `default:":8080"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
	// BodyLimit uses echo's size syntax (e.g. 12M). Keep it above Upload.MaxBytes
	// so oversized files reach validation and get a proper error.
	BodyLimit string `split_words:"true" default:"32M"`
	// PublicSignUp lets anyone register an admin account.
	PublicSignUp bool `split_words:"true"`
}

type GRPCConfig struct {
	Enable bool   `default:"true"`
	Addr   string `default:":50051"`
}

type StoreConfig struct {
	Driver          string `default:"spanner"`
	SpannerDatabase string `split_words:"true" default:"projects/test-project/instances/dev-instance/databases/machinery-catalog"`
	PostgresDSN     string `split_words:"true"`
}

type MediaConfig struct {
	Driver              string `default:"none"`
	Folder              string `default:"products"`
	CloudinaryCloudName string `split_words:"true"`
	CloudinaryAPIKey    string `split_words:"true"`
	CloudinaryAPISecret string `split_words:"true"`
	GCSBucket           string `split_words:"true"`
}

type UploadConfig struct {
	MaxBytes             int64         `split_words:"true" default:"10485760"`
	MaxVideoDuration     time.Duration `split_words:"true" default:"15s"`
	RequireMediaOnCreate bool          `split_words:"true"`
}

// AdminConfig is the account created by the seeder.
type AdminConfig struct {
	Name     string `default:"Administrator"`
	Email    string `default:"admin@example.com"`
	Password string `default:"admin123"`
}

// Load reads envFiles (default ".env"), then the process environment.
// Missing env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field requirements envconfig tags cannot express.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}

	switch c.Store.Driver {
	case StoreSpanner:
		if c.Store.SpannerDatabase == "" {
			return errors.New("STORE_SPANNER_DATABASE is required for the spanner store")
		}
	case StorePostgres:
		if c.Store.PostgresDSN == "" {
			return errors.New("STORE_POSTGRES_DSN is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	switch c.Media.Driver {
	case MediaCloudinary:
		if c.Media.CloudinaryCloudName == "" || c.Media.CloudinaryAPIKey == "" || c.Media.CloudinaryAPISecret == "" {
			return errors.New("cloudinary media driver needs MEDIA_CLOUDINARY_CLOUD_NAME, MEDIA_CLOUDINARY_API_KEY and MEDIA_CLOUDINARY_API_SECRET")
		}
	case MediaGCS:
		if c.Media.GCSBucket == "" {
			return errors.New("MEDIA_GCS_BUCKET is required for the gcs media driver")
		}
	case MediaNone:
	default:
		return fmt.Errorf("unknown media driver %q", c.Media.Driver)
	}

	if c.Upload.MaxBytes <= 0 {
		return errors.New("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
