package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/light-bringer/machinery-catalog/internal/app/account/usecases/sign_up"
	"github.com/light-bringer/machinery-catalog/internal/config"
	"github.com/light-bringer/machinery-catalog/internal/pkg/clock"
	"github.com/light-bringer/machinery-catalog/internal/pkg/logger"
	"github.com/light-bringer/machinery-catalog/internal/seed"
	"github.com/light-bringer/machinery-catalog/internal/services"
)

var (
	migrateDir = flag.String("migrations", "migrations/spanner", "Directory containing Spanner DDL files")
	withSeed   = flag.Bool("seed", false, "Load the sample catalog and admin account after migrating")
	seedOnly   = flag.Bool("seed-only", false, "Skip schema changes and only seed")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	zlog, flush, err := logger.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer flush()

	// 1. Schema
	if !*seedOnly {
		if err := migrate(ctx, cfg, zlog); err != nil {
			return err
		}
		zlog.Info("migrations completed", zap.String("store", cfg.Store.Driver))
	}

	// 2. Sample data
	if *withSeed || *seedOnly {
		return runSeed(ctx, cfg, zlog)
	}
	return nil
}

func migrate(ctx context.Context, cfg *config.Config, zlog *zap.Logger) error {
	switch cfg.Store.Driver {
	case config.StoreSpanner:
		db, err := parseDatabasePath(cfg.Store.SpannerDatabase)
		if err != nil {
			return err
		}
		m := &spannerMigrator{db: db, dir: *migrateDir, logger: zlog.Named("spanner")}
		return m.run(ctx)

	case config.StorePostgres:
		store, err := services.OpenStore(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.AutoMigrate(); err != nil {
			return fmt.Errorf("failed to auto-migrate postgres: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func runSeed(ctx context.Context, cfg *config.Config, zlog *zap.Logger) error {
	store, err := services.OpenStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	seeder := seed.NewSeeder(
		store.Products,
		sign_up.NewInteractor(store.Users, clock.NewRealClock()),
		zlog.Named("seed"),
	)
	_, err = seeder.Run(ctx, seed.Admin{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	return err
}
