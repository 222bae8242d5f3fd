package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// spannerMigrator creates the instance and database when missing and
// applies the DDL files in dir in name order.
type spannerMigrator struct {
	db     databasePath
	dir    string
	logger *zap.Logger
}

func (m *spannerMigrator) run(ctx context.Context) error {
	if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
		m.logger.Info("using spanner emulator", zap.String("host", os.Getenv("SPANNER_EMULATOR_HOST")))
	}

	if err := m.ensureInstance(ctx); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := m.ensureDatabase(ctx); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	if err := m.applyMigrations(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (m *spannerMigrator) ensureInstance(ctx context.Context) error {
	log := m.logger.With(zap.String("instance", m.db.instanceName()))

	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: m.db.instanceName()})
	switch {
	case err == nil:
		log.Info("instance already exists")
		return nil
	case status.Code(err) != codes.NotFound:
		log.Warn("unexpected error checking instance, continuing", zap.Error(err))
		return nil
	}

	// Instance creation only makes sense against the emulator; real
	// instances are provisioned outside this tool.
	log.Info("creating instance")
	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     "projects/" + m.db.Project,
		InstanceId: m.db.Instance,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", m.db.Project),
			DisplayName: "Machinery Catalog",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		log.Warn("instance creation did not finish cleanly", zap.Error(err))
	}
	log.Info("instance created")
	return nil
}

func (m *spannerMigrator) ensureDatabase(ctx context.Context) error {
	log := m.logger.With(zap.String("database", m.db.String()))

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: m.db.String()})
	switch {
	case err == nil:
		log.Info("database already exists")
		return nil
	case status.Code(err) != codes.NotFound:
		if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
			log.Warn("proceeding with database (emulator mode)", zap.Error(err))
			return nil
		}
		return fmt.Errorf("failed to check database: %w", err)
	}

	log.Info("creating database")
	op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          m.db.instanceName(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", m.db.Database),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	log.Info("database created")
	return nil
}

func (m *spannerMigrator) applyMigrations(ctx context.Context) error {
	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	files, err := filepath.Glob(filepath.Join(m.dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migration files: %w", err)
	}
	if len(files) == 0 {
		m.logger.Warn("no migration files found", zap.String("dir", m.dir))
		return nil
	}

	for _, file := range files {
		name := filepath.Base(file)
		log := m.logger.With(zap.String("migration", name))

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		// Re-read the live schema per file so earlier files are accounted for.
		ddl, err := adminClient.GetDatabaseDdl(ctx, &databasepb.GetDatabaseDdlRequest{Database: m.db.String()})
		if err != nil {
			return fmt.Errorf("failed to read current schema: %w", err)
		}

		statements := pendingStatements(ddl.GetStatements(), splitDDLStatements(string(content)))
		if len(statements) == 0 {
			log.Info("migration already applied")
			continue
		}

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   m.db.String(),
			Statements: statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", name, err)
		}
		log.Info("migration applied", zap.Int("statements", len(statements)))
	}
	return nil
}
