package queries

import (
	"fmt"
	"strings"
)

// PatchField is one optional column of a partial update.
type PatchField struct {
	Column string
	Value  interface{}
}

// BuildUpdateQuery assembles a parameterized UPDATE for the fields that are
// actually present. Returns ok=false when no field is set, so callers can
// skip the statement instead of issuing an empty SET.
func BuildUpdateQuery(table string, fields []PatchField, idColumn string, id int64) (string, []interface{}, bool) {
	setClauses := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)

	for _, field := range fields {
		args = append(args, field.Value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field.Column, len(args)))
	}
	if len(setClauses) == 0 {
		return "", nil, false
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(setClauses, ", "), idColumn, len(args),
	)
	return query, args, true
}
