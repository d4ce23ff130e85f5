package matching

import (
	"strings"

	"github.com/Ramsey-B/briar/pkg/normalizer"
)

// Soundex matches names by their per-token Soundex phonetic codes.
// "Robert" and "Rupert" both encode to R163 and therefore match.
type Soundex struct{}

// NewSoundex creates a Soundex strategy
func NewSoundex() *Soundex {
	return &Soundex{}
}

func (s *Soundex) Name() string { return "soundex" }

func (s *Soundex) IsApplicable(v string) bool {
	return normalizer.PhoneticProfile(v) != ""
}

// Encode returns the Soundex codes of each token, joined by spaces
func (s *Soundex) Encode(v string) string {
	return strings.Join(s.tokenCodes(v), " ")
}

func (s *Soundex) tokenCodes(v string) []string {
	tokens := strings.Fields(normalizer.PhoneticProfile(v))
	codes := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if code := soundexCode(token); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// Matches reports a match when the full encodings are equal or any token
// code is shared between the two names.
func (s *Soundex) Matches(a, b string) bool {
	ca, cb := s.tokenCodes(a), s.tokenCodes(b)
	if len(ca) == 0 || len(cb) == 0 {
		return false
	}
	if strings.Join(ca, " ") == strings.Join(cb, " ") {
		return true
	}
	return len(intersect(ca, cb)) > 0
}

// Similarity is 1.0 for equal encodings, otherwise the token-code overlap
// ratio |A∩B| / max(|A|, |B|).
func (s *Soundex) Similarity(a, b string) float64 {
	ca, cb := s.tokenCodes(a), s.tokenCodes(b)
	if len(ca) == 0 || len(cb) == 0 {
		return 0.0
	}
	if strings.Join(ca, " ") == strings.Join(cb, " ") {
		return 1.0
	}

	setA, setB := toSet(ca), toSet(cb)
	shared := 0
	for code := range setA {
		if _, ok := setB[code]; ok {
			shared++
		}
	}
	maxSize := len(setA)
	if len(setB) > maxSize {
		maxSize = len(setB)
	}
	return float64(shared) / float64(maxSize)
}

// soundexCode encodes one token as a standard 4-character Soundex code
func soundexCode(token string) string {
	if token == "" {
		return ""
	}

	code := token[:1]
	prev := soundexDigit(rune(token[0]))
	for i := 1; i < len(token) && len(code) < 4; i++ {
		d := soundexDigit(rune(token[i]))
		if d != "0" && d != prev {
			code += d
		}
		prev = d
	}
	for len(code) < 4 {
		code += "0"
	}
	return code
}

func soundexDigit(r rune) string {
	switch r {
	case 'B', 'F', 'P', 'V':
		return "1"
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return "2"
	case 'D', 'T':
		return "3"
	case 'L':
		return "4"
	case 'M', 'N':
		return "5"
	case 'R':
		return "6"
	default:
		return "0"
	}
}

func toSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

func intersect(a, b []string) []string {
	setB := toSet(b)
	var shared []string
	for code := range toSet(a) {
		if _, ok := setB[code]; ok {
			shared = append(shared, code)
		}
	}
	return shared
}
