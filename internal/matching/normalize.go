package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes free text for comparison: lowercase, accents
// stripped, punctuation removed, whitespace collapsed. Codes like "NR-35"
// collapse to "nr35" so they survive as a single token.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace && b.Len() > 0 {
				b.WriteRune(' ')
			}
			lastSpace = true
		}
		// everything else (punctuation, symbols) is dropped
	}
	return strings.TrimSpace(b.String())
}

// NormalizeCode reduces a certification code to a comparable key:
// normalized text with the remaining spaces removed, so "A-II/1",
// "a ii 1" and "AII1" all map to "aii1".
func NormalizeCode(code string) string {
	return strings.ReplaceAll(Normalize(code), " ", "")
}
