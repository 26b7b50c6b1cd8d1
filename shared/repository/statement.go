package repository

import (
	"fmt"
	"strings"
	"todomac/shared/dto"
	"todomac/shared/model"
)

// Statements are rendered with sqlx named parameters (:name) and bound per driver later.

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}

func assignments(fields []model.Field, args map[string]any) (names, values, sets []string) {
	for _, field := range fields {
		value := ":" + field.Name
		if field.IsRaw() {
			value = field.Expression()
		} else {
			args[field.Name] = field.Value
		}

		names = append(names, field.Name)
		values = append(values, value)
		sets = append(sets, fmt.Sprintf("%s = %s", field.Name, value))
	}

	return names, values, sets
}

func BuildInsert(projection model.Projection, fields []model.Field) (string, map[string]any) {
	args := map[string]any{}

	if len(fields) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", projection.Table(), projection.ColumnList()), args
	}

	names, values, _ := assignments(fields, args)

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		projection.Table(),
		strings.Join(names, ", "),
		strings.Join(values, ", "),
		projection.ColumnList(),
	)

	return query, args
}

func BuildSelect(projection model.Projection, filter dto.FilterGroup, sorts ...dto.Sort) (string, map[string]any) {
	where, args := whereClause(filter)

	query := fmt.Sprintf("SELECT %s FROM %s%s", projection.ColumnList(), projection.Table(), where)

	if len(sorts) > 0 {
		ordering := make([]string, len(sorts))
		for i, sort := range sorts {
			ordering[i] = sort.String()
		}

		query += " ORDER BY " + strings.Join(ordering, ", ")
	}

	return query, args
}

// BuildUpdate rejects an empty filter so a statement can never touch every row.
func BuildUpdate(projection model.Projection, fields []model.Field, filter dto.FilterGroup) (string, map[string]any, error) {
	if len(fields) == 0 {
		return "", nil, errNoFields
	}

	where, args := whereClause(filter)
	if where == "" {
		return "", nil, errRequiredFilter
	}

	for _, field := range fields {
		if _, clash := args[field.Name]; clash && !field.IsRaw() {
			return "", nil, fmt.Errorf("field %q collides with a filter argument", field.Name)
		}
	}

	_, _, sets := assignments(fields, args)

	query := fmt.Sprintf("UPDATE %s SET %s%s RETURNING %s",
		projection.Table(),
		strings.Join(sets, ", "),
		where,
		projection.ColumnList(),
	)

	return query, args, nil
}

func BuildDelete(projection model.Projection, filter dto.FilterGroup) (string, map[string]any, error) {
	where, args := whereClause(filter)
	if where == "" {
		return "", nil, errRequiredFilter
	}

	return fmt.Sprintf("DELETE FROM %s%s RETURNING %s", projection.Table(), where, projection.ColumnList()), args, nil
}
