package query

import "fmt"

// Condition is a WHERE clause fragment.
type Condition interface {
	// SQL returns the fragment and its parameters. paramIndex is the first
	// free index for generated names (@p0, @p1, ...).
	SQL(paramIndex int) (string, map[string]interface{})
}

type compareCondition struct {
	field string
	op    string
	value interface{}
}

// Eq generates "field = @pN".
func Eq(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "=", value: value}
}

// Ne generates "field != @pN".
func Ne(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "!=", value: value}
}

func (c *compareCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, name), map[string]interface{}{name: c.value}
}

type nullCondition struct {
	field string
	not   bool
}

// IsNull generates "field IS NULL".
func IsNull(field string) Condition {
	return &nullCondition{field: field}
}

// IsNotNull generates "field IS NOT NULL".
func IsNotNull(field string) Condition {
	return &nullCondition{field: field, not: true}
}

func (c *nullCondition) SQL(int) (string, map[string]interface{}) {
	if c.not {
		return c.field + " IS NOT NULL", map[string]interface{}{}
	}
	return c.field + " IS NULL", map[string]interface{}{}
}
