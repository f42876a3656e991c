package repository

import "strings"

// BuildOrder resolves a client-supplied ordering param ("campo" or "-campo")
// against an allow-list of field→column mappings. Unknown or empty values
// fall back to the endpoint's default ordering.
func BuildOrder(ordering string, allowed map[string]string, def string) string {
	if ordering == "" {
		return def
	}
	field := strings.TrimPrefix(ordering, "-")
	col, ok := allowed[field]
	if !ok {
		return def
	}
	if strings.HasPrefix(ordering, "-") {
		return col + " DESC"
	}
	return col + " ASC"
}
