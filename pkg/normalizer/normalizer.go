// Package normalizer canonicalizes free-text names and attributes so that
// matching strategies and rule evaluators compare like with like.
package normalizer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks (diacritics), and
// recomposes. Recomposition matters for Hangul: NFD splits syllables into
// conjoining jamo, which must be folded back into the U+AC00 syllable block.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

// NormalizeName canonicalizes a name for comparison: diacritics removed,
// uppercased, restricted to A-Z, 0-9, Hangul syllables and whitespace, and
// tokens sorted lexicographically so word order is irrelevant
// ("John Smith" == "Smith John"). Empty input normalizes to "".
func NormalizeName(s string) string {
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
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', isHangulSyllable(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	tokens := strings.Fields(b.String())
	if len(tokens) == 0 {
		return ""
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// NormalizeNationality uppercases and trims a nationality/country value
func NormalizeNationality(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CalculateSimilarity returns an edit-distance similarity in [0, 1] between
// two normalized names. Either side empty yields 0.
func CalculateSimilarity(a, b string) float64 {
	na := NormalizeName(a)
	nb := NormalizeName(b)
	if na == "" || nb == "" {
		return 0.0
	}
	if na == nb {
		return 1.0
	}

	distance := levenshtein.ComputeDistance(na, nb)
	maxLen := len([]rune(na))
	if l := len([]rune(nb)); l > maxLen {
		maxLen = l
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// ContainsAllWords reports whether every normalized token of search appears
// as a substring of the normalized full value.
func ContainsAllWords(full, search string) bool {
	nf := NormalizeName(full)
	ns := NormalizeName(search)
	if nf == "" || ns == "" {
		return false
	}
	for _, token := range strings.Fields(ns) {
		if !strings.Contains(nf, token) {
			return false
		}
	}
	return true
}
