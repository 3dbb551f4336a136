package dto

import (
	"fmt"
	"strings"
)

// Filter matches one column against a value.
type Filter struct {
	Field string
	Value any
	Table string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

// GetWhereClause renders the filter as a named-parameter equality bound to argName.
func (f *Filter) GetWhereClause(argName string) (string, map[string]any) {
	return fmt.Sprintf("%s = :%s", f.column(), argName), map[string]any{argName: f.Value}
}

// FilterGroup ANDs its filters. An empty group matches every row.
type FilterGroup struct {
	Filters []Filter
}

// GetWhereClause joins the filters with AND. A field filtered twice gets a numbered
// argument so the bindings stay distinct.
func (g *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(g.Filters))

	for i, filter := range g.Filters {
		argName := filter.Field
		if _, taken := args[argName]; taken {
			argName = fmt.Sprintf("%s_%d", filter.Field, i)
		}

		clause, arg := filter.GetWhereClause(argName)
		clauses = append(clauses, clause)
		args[argName] = arg[argName]
	}

	if len(clauses) == 0 {
		return "", args
	}

	return "(" + strings.Join(clauses, " AND ") + ")", args
}
