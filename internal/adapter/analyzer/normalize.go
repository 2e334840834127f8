package analyzer

import (
	"strings"
	"unicode"
)

// CollapseWhitespace folds every run of whitespace, newlines included,
// into a single space and trims the ends. Whitespace-only input yields
// the empty string. Applying it twice is a no-op.
func CollapseWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}

	return b.String()
}
