// Package normalize canonicalizes raw transaction descriptions for keyword
// and statistical matching.
package normalize

import (
	"strings"
	"unicode"
)

// Description canonicalizes raw description text: uppercase, digits and all
// other non-letter characters become spaces, runs of whitespace collapse to
// a single space, and the result is trimmed. Total function: any input
// produces a (possibly empty) normalized string.
//
// Digits become spaces rather than vanishing so that store numbers glued to
// merchant names ("TESCO3028EXPRESS") keep their word boundaries.
func Description(raw string) string {
	upper := strings.ToUpper(raw)

	var b strings.Builder
	b.Grow(len(upper))
	lastSpace := true
	for _, r := range upper {
		if !unicode.IsLetter(r) {
			r = ' '
		}
		if r == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		b.WriteRune(r)
	}

	return strings.TrimRight(b.String(), " ")
}
