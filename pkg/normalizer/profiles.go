package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
)

// Matching strategies use stricter normalization profiles than NormalizeName:
// no token sorting, and a narrower character set per algorithm family.

// PhoneticProfile prepares a value for Soundex / Metaphone encoding. Only
// A-Z survives; digits and Hangul carry no phonetic information for these
// encoders. Whitespace is collapsed so the value still splits into tokens.
func PhoneticProfile(s string) string {
	return profile(s, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	})
}

// GeneralProfile prepares a value for Jaro-Winkler and N-Gram comparison.
// Keeps A-Z, 0-9 and Hangul syllables.
func GeneralProfile(s string) string {
	return profile(s, func(r rune) bool {
		return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || isHangulSyllable(r)
	})
}

func profile(s string, keep func(rune) bool) string {
	if s == "" {
		return ""
	}

	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}
	stripped = strings.ToUpper(stripped)

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case keep(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
