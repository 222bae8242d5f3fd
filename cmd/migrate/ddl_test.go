package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatabasePath(t *testing.T) {
	p, err := parseDatabasePath("projects/test-project/instances/dev-instance/databases/machinery-catalog")
	require.NoError(t, err)
	assert.Equal(t, databasePath{Project: "test-project", Instance: "dev-instance", Database: "machinery-catalog"}, p)
	assert.Equal(t, "projects/test-project/instances/dev-instance", p.instanceName())
	assert.Equal(t, "projects/test-project/instances/dev-instance/databases/machinery-catalog", p.String())

	for _, bad := range []string{"", "machinery-catalog", "projects/p/instances/i", "projects/p/regions/i/databases/d"} {
		_, err := parseDatabasePath(bad)
		assert.Error(t, err, bad)
	}
}

func TestSplitDDLStatements(t *testing.T) {
	content := `-- products
CREATE TABLE products (
  product_id STRING(36) NOT NULL,
) PRIMARY KEY (product_id);

-- lookups
CREATE INDEX products_by_category ON products(category);
`
	stmts := splitDDLStatements(content)
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE products (\nproduct_id STRING(36) NOT NULL,\n) PRIMARY KEY (product_id)", stmts[0])
	assert.Equal(t, "CREATE INDEX products_by_category ON products(category)", stmts[1])
}

func TestObjectKey(t *testing.T) {
	tests := map[string]string{
		"CREATE TABLE products (x INT64) PRIMARY KEY (x)":    "TABLE products",
		"create table `Users` (x INT64) PRIMARY KEY (x)":     "TABLE users",
		"CREATE UNIQUE INDEX users_by_email ON users(email)": "INDEX users_by_email",
		"CREATE UNIQUE NULL_FILTERED INDEX idx ON t(c)":      "INDEX idx",
		"ALTER TABLE products ADD COLUMN rating FLOAT64":     "",
		"DROP INDEX products_by_category":                    "",
	}
	for stmt, want := range tests {
		assert.Equal(t, want, objectKey(stmt), stmt)
	}
}

func TestPendingStatements(t *testing.T) {
	existing := []string{
		"CREATE TABLE products (\n  product_id STRING(36) NOT NULL,\n) PRIMARY KEY(product_id)",
		"CREATE INDEX products_by_category ON products(category)",
	}
	stmts := []string{
		"CREATE TABLE products (product_id STRING(36) NOT NULL) PRIMARY KEY (product_id)",
		"CREATE INDEX products_by_category ON products(category)",
		"CREATE TABLE users (user_id STRING(36) NOT NULL) PRIMARY KEY (user_id)",
		"ALTER TABLE products ADD COLUMN rating FLOAT64",
	}

	assert.Equal(t, []string{
		"CREATE TABLE users (user_id STRING(36) NOT NULL) PRIMARY KEY (user_id)",
		"ALTER TABLE products ADD COLUMN rating FLOAT64",
	}, pendingStatements(existing, stmts))

	assert.Equal(t, stmts, pendingStatements(nil, stmts))
}
