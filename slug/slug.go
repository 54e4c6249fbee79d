// Package slug derives URL-safe identifiers from free text.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lower-cases s, collapses every run of non-alphanumerics into one hyphen
// and trims hyphens from both ends.
func Make(s string) string {
	s = nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// CourseID appends the last six digits of now in milliseconds to the title slug.
// A title with no alphanumerics falls back to "course".
func CourseID(title string, now time.Time) string {
	base := Make(title)
	if base == "" {
		base = "course"
	}
	return fmt.Sprintf("%s-%06d", base, now.UnixMilli()%1_000_000)
}
