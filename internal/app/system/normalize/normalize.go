// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Email trims whitespace and lowercases so lookups and the unique index
// agree on one spelling.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role trims and lowercases a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
