package repositories

import (
	"fmt"
	"strings"
)

// predicate is one filter clause. The column and operator come from the
// repository's fixed allow-list; only the value is caller-controlled, and
// it is always bound through a placeholder, never rendered into the text.
type predicate struct {
	column   string
	operator string
	value    any
}

// WhereBuilder assembles an ANDed WHERE clause with positional
// placeholders. Parameters are bound in the order predicates are added.
type WhereBuilder struct {
	predicates []predicate
}

// Where appends one predicate.
func (b *WhereBuilder) Where(column, operator string, value any) *WhereBuilder {
	b.predicates = append(b.predicates, predicate{column: column, operator: operator, value: value})
	return b
}

// Build renders the clause and its parameter list. Placeholders start at
// $1. An empty builder renders an empty clause and no parameters.
func (b *WhereBuilder) Build() (string, []any) {
	if len(b.predicates) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(b.predicates))
	params := make([]any, 0, len(b.predicates))
	for i, p := range b.predicates {
		parts = append(parts, fmt.Sprintf("%s %s $%d", p.column, p.operator, i+1))
		params = append(params, p.value)
	}

	return " WHERE " + strings.Join(parts, " AND "), params
}

// SetBuilder assembles the SET clause of a partial UPDATE. The key
// predicate is rendered after the assignments so its placeholder comes
// last, matching the parameter order.
type SetBuilder struct {
	assignments []predicate
}

// Set appends one column assignment.
func (b *SetBuilder) Set(column string, value any) *SetBuilder {
	b.assignments = append(b.assignments, predicate{column: column, value: value})
	return b
}

// Empty reports whether no assignments were added.
func (b *SetBuilder) Empty() bool {
	return len(b.assignments) == 0
}

// Build renders "SET a = $1, b = $2 WHERE key = $3" with the key value
// appended to the parameter list.
func (b *SetBuilder) Build(keyColumn string, keyValue any) (string, []any) {
	parts := make([]string, 0, len(b.assignments))
	params := make([]any, 0, len(b.assignments)+1)
	for i, a := range b.assignments {
		parts = append(parts, fmt.Sprintf("%s = $%d", a.column, i+1))
		params = append(params, a.value)
	}
	params = append(params, keyValue)

	clause := fmt.Sprintf("SET %s WHERE %s = $%d", strings.Join(parts, ", "), keyColumn, len(params))
	return clause, params
}
