package report

import (
	"regexp"
	"strings"
)

var (
	codeMarkerRe = regexp.MustCompile(`(?i)&lt;code&gt;|&lt;/code&gt;`)

	// An entity runs from '&' to the last ';' before whitespace or markup.
	entityRe = regexp.MustCompile(`&[^\s<>]*;`)

	newlines = strings.NewReplacer("\r", "", "\n", "")
)

// Sanitize prepares a raw response for structural parsing. Escaped <code>
// markers are removed while their content is kept, then every remaining
// entity escape is dropped, then all newlines. Entity removal is lossy.
func Sanitize(raw string) string {
	s := codeMarkerRe.ReplaceAllString(raw, "")
	s = entityRe.ReplaceAllString(s, "")
	return newlines.Replace(s)
}
