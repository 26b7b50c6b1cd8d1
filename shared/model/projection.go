package model

import (
	"slices"
	"strings"
)

// Projection is the table name and the ordered column set an entity reads and returns.
// It is a value: copies never share the column slice.
type Projection struct {
	table   string
	columns []string
}

func NewProjection(table string, columns ...string) Projection {
	return Projection{
		table:   table,
		columns: slices.Clone(columns),
	}
}

func (p Projection) Table() string {
	return p.table
}

// Columns returns a copy of the ordered column list.
func (p Projection) Columns() []string {
	return slices.Clone(p.columns)
}

// ColumnList renders the columns for a SELECT or RETURNING clause.
func (p Projection) ColumnList() string {
	return strings.Join(p.columns, ", ")
}

func (p Projection) Has(column string) bool {
	return slices.Contains(p.columns, column)
}
