// ABOUTME: SQL helper functions for query construction.
// ABOUTME: Escapes LIKE patterns so project names with underscores match literally.

package store

import "strings"

// escapeSQLLike escapes %, _ and \ for use in a LIKE pattern with ESCAPE '\'.
// Project names such as Sales_Dashboard would otherwise treat _ as a wildcard.
func escapeSQLLike(pattern string) string {
	pattern = strings.ReplaceAll(pattern, `\`, `\\`)
	pattern = strings.ReplaceAll(pattern, "%", `\%`)
	pattern = strings.ReplaceAll(pattern, "_", `\_`)
	return pattern
}
