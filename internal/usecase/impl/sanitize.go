package impl

import (
	"html"
	"strings"
	"unicode"
)

// sanitizeInput neutralizes caller-supplied text before storage: leading
// and trailing whitespace is trimmed, control characters are stripped and
// markup-significant characters are escaped.
func sanitizeInput(s string) string {
	trimmed := strings.TrimSpace(s)

	var cleaned strings.Builder
	cleaned.Grow(len(trimmed))
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			continue
		}
		cleaned.WriteRune(r)
	}

	return html.EscapeString(cleaned.String())
}
