package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	accountcontracts "github.com/light-bringer/machinery-catalog/internal/app/account/contracts"
	accountrepo "github.com/light-bringer/machinery-catalog/internal/app/account/repo"
	"github.com/light-bringer/machinery-catalog/internal/app/product/contracts"
	productrepo "github.com/light-bringer/machinery-catalog/internal/app/product/repo"
	"github.com/light-bringer/machinery-catalog/internal/config"
	"github.com/light-bringer/machinery-catalog/internal/models/m_product"
	"github.com/light-bringer/machinery-catalog/internal/models/m_user"
	"github.com/light-bringer/machinery-catalog/internal/pkg/committer"
)

// ProductStore is a product repository that also serves the read model.
type ProductStore interface {
	contracts.ProductRepository
	contracts.ReadModel
}

// Store holds the repositories for the configured driver.
type Store struct {
	Products ProductStore
	Users    accountcontracts.UserRepository

	// Exactly one of these is set.
	Spanner *spanner.Client
	Gorm    *gorm.DB
}

// OpenStore connects to the database named by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	switch cfg.Driver {
	case config.StoreSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		comm := committer.NewCommitter(client)
		return &Store{
			Products: productrepo.NewSpannerProductRepo(client, comm),
			Users:    accountrepo.NewSpannerUserRepo(client, comm),
			Spanner:  client,
		}, nil

	case config.StorePostgres:
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return &Store{
			Products: productrepo.NewGormProductRepo(db),
			Users:    accountrepo.NewGormUserRepo(db),
			Gorm:     db,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// AutoMigrate creates or updates the postgres tables. Spanner schemas are
// applied from DDL files by cmd/migrate instead.
func (s *Store) AutoMigrate() error {
	if s.Gorm == nil {
		return nil
	}
	return s.Gorm.AutoMigrate(&m_product.Record{}, &m_user.Record{})
}

// Close releases the database connection.
func (s *Store) Close() {
	if s.Spanner != nil {
		s.Spanner.Close()
	}
	if s.Gorm != nil {
		if sqlDB, err := s.Gorm.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
