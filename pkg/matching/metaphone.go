package matching

import (
	"strings"

	"github.com/Ramsey-B/briar/pkg/normalizer"
)

// Metaphone matches names by a double-metaphone style encoding: every token
// gets a primary code and an alternate code covering the common divergent
// pronunciation. "Muhammad" and "Mohammed" encode identically.
type Metaphone struct{}

// NewMetaphone creates a Metaphone strategy
func NewMetaphone() *Metaphone {
	return &Metaphone{}
}

func (m *Metaphone) Name() string { return "metaphone" }

func (m *Metaphone) IsApplicable(v string) bool {
	return normalizer.PhoneticProfile(v) != ""
}

// Encode returns the primary and alternate encodings of a full name, each
// composed of per-token codes joined by spaces.
func (m *Metaphone) Encode(v string) (primary, alternate string) {
	tokens := strings.Fields(normalizer.PhoneticProfile(v))
	primaries := make([]string, 0, len(tokens))
	alternates := make([]string, 0, len(tokens))
	for _, token := range tokens {
		p, a := metaphoneCodes(token)
		if p == "" {
			continue
		}
		primaries = append(primaries, p)
		alternates = append(alternates, a)
	}
	return strings.Join(primaries, " "), strings.Join(alternates, " ")
}

// Matches reports a match when the primary encodings are equal, the primary
// of one equals the alternate of the other, the alternates are equal, or any
// per-token primary code is shared.
func (m *Metaphone) Matches(a, b string) bool {
	p1, a1 := m.Encode(a)
	p2, a2 := m.Encode(b)
	if p1 == "" || p2 == "" {
		return false
	}
	if p1 == p2 || p1 == a2 || a1 == p2 || a1 == a2 {
		return true
	}
	return len(intersect(strings.Fields(p1), strings.Fields(p2))) > 0
}

// Similarity is 1.0 for equal primary encodings, 0.9 for a cross
// primary/alternate match, otherwise the Jaccard overlap of the per-token
// primary code sets.
func (m *Metaphone) Similarity(a, b string) float64 {
	p1, a1 := m.Encode(a)
	p2, a2 := m.Encode(b)
	if p1 == "" || p2 == "" {
		return 0.0
	}
	if p1 == p2 {
		return 1.0
	}
	if p1 == a2 || a1 == p2 || a1 == a2 {
		return 0.9
	}

	setA, setB := toSet(strings.Fields(p1)), toSet(strings.Fields(p2))
	shared := 0
	for code := range setA {
		if _, ok := setB[code]; ok {
			shared++
		}
	}
	union := len(setA) + len(setB) - shared
	if union == 0 {
		return 0.0
	}
	return float64(shared) / float64(union)
}

// metaphoneCodes encodes one token, producing a primary code and an
// alternate. The alternate diverges only where a letter group has a common
// second pronunciation (soft/hard C and G, TH, X, Z, SCH).
func metaphoneCodes(token string) (string, string) {
	if token == "" {
		return "", ""
	}

	var primary, alternate strings.Builder
	var prevP, prevA byte

	for i := 0; i < len(token) && primary.Len() < 6; i++ {
		c := token[i]
		next := byte(0)
		if i+1 < len(token) {
			next = token[i+1]
		}

		// p/a stay 0 for silent letters; only consecutive identical codes
		// are collapsed
		var p, a byte

		switch c {
		case 'A', 'E', 'I', 'O', 'U':
			// vowels are only significant at the start of a token
			if i == 0 {
				p, a = 'A', 'A'
			}
		case 'B':
			p, a = 'P', 'P'
		case 'C':
			if next == 'H' {
				p, a = 'X', 'K'
				i++
			} else if next == 'I' || next == 'E' || next == 'Y' {
				p, a = 'S', 'S'
			} else {
				p, a = 'K', 'K'
			}
		case 'D':
			if next == 'G' {
				p, a = 'J', 'J'
				i++
			} else {
				p, a = 'T', 'T'
			}
		case 'G':
			if next == 'H' {
				// GH is silent after the first letter (e.g. "night")
				if i == 0 {
					p, a = 'K', 'K'
				}
				i++
			} else if next == 'I' || next == 'E' || next == 'Y' {
				p, a = 'J', 'K'
			} else {
				p, a = 'K', 'K'
			}
		case 'H':
			// silent between vowels and at token end
			if i == 0 || (next != 0 && !isVowel(next) && isVowel(token[i-1])) {
				p, a = 'H', 'H'
			}
		case 'J':
			p, a = 'J', 'J'
		case 'K':
			p, a = 'K', 'K'
		case 'L':
			p, a = 'L', 'L'
		case 'M':
			p, a = 'M', 'M'
		case 'N':
			p, a = 'N', 'N'
		case 'P':
			if next == 'H' {
				p, a = 'F', 'F'
				i++
			} else {
				p, a = 'P', 'P'
			}
		case 'Q':
			p, a = 'K', 'K'
		case 'R':
			p, a = 'R', 'R'
		case 'S':
			if next == 'C' && i+2 < len(token) && token[i+2] == 'H' {
				p, a = 'X', 'S'
			} else if next == 'H' {
				p, a = 'X', 'X'
				i++
			} else {
				p, a = 'S', 'S'
			}
		case 'T':
			if next == 'H' {
				p, a = '0', 'T'
				i++
			} else {
				p, a = 'T', 'T'
			}
		case 'V':
			p, a = 'F', 'F'
		case 'W', 'Y':
			// only voiced when followed by a vowel
			if next != 0 && isVowel(next) {
				p, a = c, c
			}
		case 'X':
			if i == 0 {
				p, a = 'S', 'S'
			} else {
				p, a = 'K', 'S'
			}
		case 'Z':
			p, a = 'S', 'T'
		case 'F':
			p, a = 'F', 'F'
		}

		if p != 0 && p != prevP {
			primary.WriteByte(p)
		}
		if a != 0 && a != prevA {
			alternate.WriteByte(a)
		}
		prevP, prevA = p, a
	}
	return primary.String(), alternate.String()
}

func isVowel(c byte) bool {
	return c == 'A' || c == 'E' || c == 'I' || c == 'O' || c == 'U'
}
