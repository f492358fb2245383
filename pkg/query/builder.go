// Package query builds parameterized SELECT statements over a ProjectionMap.
package query

import (
	"fmt"
	"strings"
)

// Builder accumulates WHERE conditions and ordering. Placeholders are
// numbered in the order conditions are added.
type Builder struct {
	projection *ProjectionMap
	clauses    []string
	args       []any
	orderBy    string
	descending bool
	tiebreak   string
	defaultBy  string
}

// NewBuilder creates a Builder that sorts by defaultSort unless OrderBy overrides it.
func NewBuilder(projection *ProjectionMap, defaultSort string) *Builder {
	return &Builder{
		projection: projection,
		defaultBy:  defaultSort,
	}
}

// OrderBy sets the sort field and direction. An empty field keeps the default sort.
func (b *Builder) OrderBy(field string, descending bool) *Builder {
	if field != "" {
		b.orderBy = b.projection.Column(field)
	}
	b.descending = descending
	return b
}

// ThenBy adds an ascending secondary sort so pages stay stable when the
// primary sort has ties.
func (b *Builder) ThenBy(field string) *Builder {
	b.tiebreak = b.projection.Column(field)
	return b
}

// WhereEquals adds an equality condition. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	b.add(b.projection.Column(field)+" = %s", value)
	return b
}

// WhereSearch matches search case-insensitively against any of fields.
// A nil or empty search is ignored.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || *search == "" || len(fields) == 0 {
		return b
	}

	placeholder := b.next("%" + *search + "%")
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = b.projection.Column(f) + " ILIKE " + placeholder
	}
	b.clauses = append(b.clauses, "("+strings.Join(parts, " OR ")+")")
	return b
}

// BuildCount returns a COUNT(*) statement with the current conditions.
func (b *Builder) BuildCount() (string, []any) {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.Table(), b.where()), b.args
}

// BuildPage returns a SELECT with conditions, ordering, limit and offset.
func (b *Builder) BuildPage(limit, offset int) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s LIMIT %d OFFSET %d",
		b.projection.Columns(),
		b.projection.Table(),
		b.where(),
		b.order(),
		limit,
		offset,
	)
	return sql, b.args
}

// BuildSingle returns a SELECT for the row whose idField equals id.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		b.projection.Column(idField),
	)
	return sql, []any{id}
}

func (b *Builder) add(format string, arg any) {
	b.clauses = append(b.clauses, fmt.Sprintf(format, b.next(arg)))
}

func (b *Builder) next(arg any) string {
	b.args = append(b.args, arg)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *Builder) where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

func (b *Builder) order() string {
	col := b.orderBy
	if col == "" {
		col = b.projection.Column(b.defaultBy)
	}

	dir := "ASC"
	if b.descending {
		dir = "DESC"
	}

	out := fmt.Sprintf(" ORDER BY %s %s", col, dir)
	if b.tiebreak != "" && b.tiebreak != col {
		out += ", " + b.tiebreak
	}
	return out
}
