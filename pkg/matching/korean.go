package matching

import "strings"

// DefaultKoreanThreshold is the minimum similarity for a Korean name match
const DefaultKoreanThreshold = 0.7

// Hangul syllables decompose arithmetically: each code point in the
// U+AC00..U+D7A3 block is cho*21*28 + jung*28 + jong offset from U+AC00.
var (
	chosung = []string{
		"ㄱ", "ㄲ", "ㄴ", "ㄷ", "ㄸ", "ㄹ", "ㅁ", "ㅂ", "ㅃ", "ㅅ",
		"ㅆ", "ㅇ", "ㅈ", "ㅉ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
	}
	jungsung = []string{
		"ㅏ", "ㅐ", "ㅑ", "ㅒ", "ㅓ", "ㅔ", "ㅕ", "ㅖ", "ㅗ", "ㅘ",
		"ㅙ", "ㅚ", "ㅛ", "ㅜ", "ㅝ", "ㅞ", "ㅟ", "ㅠ", "ㅡ", "ㅢ", "ㅣ",
	}
	jongsung = []string{
		"", "ㄱ", "ㄲ", "ㄳ", "ㄴ", "ㄵ", "ㄶ", "ㄷ", "ㄹ", "ㄺ",
		"ㄻ", "ㄼ", "ㄽ", "ㄾ", "ㄿ", "ㅀ", "ㅁ", "ㅂ", "ㅄ", "ㅅ",
		"ㅆ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
	}
)

// Korean compares the Hangul portion of names, falling back from exact
// syllable equality to chosung (initial consonant) equality to a
// Jaro-Winkler comparison over the full jamo decomposition.
type Korean struct {
	threshold float64
}

// NewKorean creates a Korean strategy with the given match threshold
func NewKorean(threshold float64) *Korean {
	return &Korean{threshold: threshold}
}

func (k *Korean) Name() string { return "korean" }

// IsApplicable is true only when the value contains Hangul syllables
func (k *Korean) IsApplicable(v string) bool {
	return ExtractHangul(v) != ""
}

// Similarity is 1.0 for identical Hangul, 0.8 for equal non-empty chosung,
// otherwise the Jaro-Winkler similarity of the jamo decompositions damped
// by 0.9. Inputs without Hangul score 0.
func (k *Korean) Similarity(a, b string) float64 {
	ha, hb := ExtractHangul(a), ExtractHangul(b)
	if ha == "" || hb == "" {
		return 0.0
	}
	if ha == hb {
		return 1.0
	}

	ca, cb := ExtractChosung(a), ExtractChosung(b)
	if ca != "" && ca == cb {
		return 0.8
	}

	return jaroWinkler([]rune(DecomposeToJamo(ha)), []rune(DecomposeToJamo(hb))) * 0.9
}

func (k *Korean) Matches(a, b string) bool {
	return k.Similarity(a, b) >= k.threshold
}

// MatchesChosung reports whether both names have the same non-empty initial
// consonant sequence, e.g. 김철수 and 김창수 both yield ㄱㅊㅅ.
func (k *Korean) MatchesChosung(a, b string) bool {
	ca, cb := ExtractChosung(a), ExtractChosung(b)
	return ca != "" && ca == cb
}

// ExtractHangul returns only the Hangul syllables of a value, concatenated
func ExtractHangul(v string) string {
	var b strings.Builder
	for _, r := range v {
		if isHangul(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExtractChosung returns the initial consonant of every Hangul syllable
func ExtractChosung(v string) string {
	var b strings.Builder
	for _, r := range v {
		if isHangul(r) {
			b.WriteString(chosung[(r-0xAC00)/(21*28)])
		}
	}
	return b.String()
}

// DecomposeToJamo expands every Hangul syllable into its phonetic
// components: initial consonant, vowel, and final consonant when present.
// 김 decomposes to ㄱㅣㅁ.
func DecomposeToJamo(v string) string {
	var b strings.Builder
	for _, r := range v {
		if !isHangul(r) {
			b.WriteRune(r)
			continue
		}
		offset := r - 0xAC00
		b.WriteString(chosung[offset/(21*28)])
		b.WriteString(jungsung[offset%(21*28)/28])
		b.WriteString(jongsung[offset%28])
	}
	return b.String()
}

func isHangul(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}
