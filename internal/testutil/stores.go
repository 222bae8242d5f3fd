package testutil

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/light-bringer/machinery-catalog/internal/models/m_product"
	"github.com/light-bringer/machinery-catalog/internal/models/m_user"
)

// SetupSpannerTest connects to the emulator database and empties the catalog
// tables. The test is skipped when SPANNER_EMULATOR_HOST is not set.
func SetupSpannerTest(t *testing.T) *spanner.Client {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	cleanSpanner(t, client)
	t.Cleanup(func() {
		cleanSpanner(t, client)
		client.Close()
	})
	return client
}

// GetTestSpannerDB returns the emulator database path, overridable with SPANNER_TEST_DATABASE.
func GetTestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/dev-instance/databases/machinery-catalog-test"
}

func cleanSpanner(t *testing.T, client *spanner.Client) {
	t.Helper()

	_, err := client.Apply(context.Background(), []*spanner.Mutation{
		spanner.Delete(m_product.TableName, spanner.AllKeys()),
		spanner.Delete(m_user.TableName, spanner.AllKeys()),
	})
	require.NoError(t, err, "failed to clean database")
}

// SetupPostgresTest opens POSTGRES_TEST_DSN, migrates the schema and empties
// the tables. The test is skipped when the variable is not set.
func SetupPostgresTest(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open postgres")
	require.NoError(t, db.AutoMigrate(&m_product.Record{}, &m_user.Record{}))

	clean := func() {
		require.NoError(t, db.Exec("DELETE FROM "+m_product.TableName).Error)
		require.NoError(t, db.Exec("DELETE FROM "+m_user.TableName).Error)
	}
	clean()
	t.Cleanup(func() {
		clean()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
