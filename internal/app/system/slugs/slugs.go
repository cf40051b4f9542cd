// internal/app/system/slugs/slugs.go
package slugs

import "github.com/gosimple/slug"

// ForName derives the URL slug from a person's name, e.g. "Ann" + "Lee"
// becomes "ann-lee". The slug is recomputed on every write so it always
// tracks the current name.
func ForName(firstName, lastName string) string {
	return slug.Make(firstName + " " + lastName)
}
