// internal/app/system/sanitize/sanitize.go
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text strips all markup from client-supplied free text and trims the
// result. Stored values are plain text only.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
