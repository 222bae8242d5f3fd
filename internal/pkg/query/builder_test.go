package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_MultipleSelectCalls(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Select("category").
		Build()

	assert.Equal(t, "SELECT product_id, name, category FROM products", stmt.SQL)
}

func TestBuilder_WhereConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Ne("product_id", "p1")).
		Where(Eq("category", "Extruders")).
		Where(IsNotNull("media_url")).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE product_id != @p0 AND category = @p1 AND media_url IS NOT NULL", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "p1",
		"p1": "Extruders",
	}, stmt.Params)
}

func TestBuilder_GroupBy(t *testing.T) {
	stmt := From("products").
		Select("category", "COUNT(*) AS product_count").
		GroupBy("category").
		OrderBy("category", Asc).
		Build()

	assert.Equal(t, "SELECT category, COUNT(*) AS product_count FROM products GROUP BY category ORDER BY category ASC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderByMultipleTerms(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		OrderBy("created_at", Desc).
		OrderBy("product_id", Asc).
		Build()

	assert.Equal(t, "SELECT product_id FROM products ORDER BY created_at DESC, product_id ASC", stmt.SQL)
}

func TestBuilder_LimitAndOffset(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Eq("featured", true)).
		OrderBy("created_at", Desc).
		Limit(8).
		Offset(16).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE featured = @p0 ORDER BY created_at DESC LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":     true,
		"limit":  int64(8),
		"offset": int64(16),
	}, stmt.Params)
}

func TestBuilder_Count(t *testing.T) {
	builder := From("products").
		Select("product_id", "name").
		Where(Eq("category", "Extruders")).
		OrderBy("created_at", Desc).
		Limit(50)

	countStmt := builder.Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE category = @p0", countStmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": "Extruders"}, countStmt.Params)

	// original builder keeps its pagination
	assert.Contains(t, builder.Build().SQL, "LIMIT @limit")
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id")

	stmt1 := base.Where(Eq("featured", true)).Build()
	stmt2 := base.Where(Eq("category", "Extruders")).Build()

	assert.Contains(t, stmt1.SQL, "featured = @p0")
	assert.NotContains(t, stmt1.SQL, "category")
	assert.Contains(t, stmt2.SQL, "category = @p0")
	assert.NotContains(t, stmt2.SQL, "featured")
}

func TestCondition_ParamIndex(t *testing.T) {
	sql, params := Eq("category", "Extruders").SQL(5)
	assert.Equal(t, "category = @p5", sql)
	assert.Equal(t, map[string]interface{}{"p5": "Extruders"}, params)

	sql, params = IsNull("media_asset_id").SQL(3)
	assert.Equal(t, "media_asset_id IS NULL", sql)
	assert.Empty(t, params)
}

func TestBuilder_String(t *testing.T) {
	str := From("products").Where(Eq("featured", true)).String()
	require.NotEmpty(t, str)
	assert.Contains(t, str, "SQL:")
	assert.Contains(t, str, "Params:")
}
