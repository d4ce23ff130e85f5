package matching

import (
	"strings"

	"github.com/Ramsey-B/briar/pkg/normalizer"
)

// DefaultJaroWinklerThreshold is the minimum similarity for a match
const DefaultJaroWinklerThreshold = 0.85

// JaroWinkler compares names with the Jaro-Winkler string metric, which
// weighs common prefixes heavily and suits person names.
type JaroWinkler struct {
	threshold float64
}

// NewJaroWinkler creates a JaroWinkler strategy with the given match threshold
func NewJaroWinkler(threshold float64) *JaroWinkler {
	return &JaroWinkler{threshold: threshold}
}

func (j *JaroWinkler) Name() string { return "jaro_winkler" }

func (j *JaroWinkler) IsApplicable(v string) bool { return applicable(v) }

// Similarity returns the full-string Jaro-Winkler similarity over the
// general normalization profile.
func (j *JaroWinkler) Similarity(a, b string) float64 {
	na, nb := normalizer.GeneralProfile(a), normalizer.GeneralProfile(b)
	if na == "" || nb == "" {
		return 0.0
	}
	return jaroWinkler([]rune(na), []rune(nb))
}

func (j *JaroWinkler) Matches(a, b string) bool {
	return j.Similarity(a, b) >= j.threshold
}

// TokenSimilarity compares names token-wise: each token of a is greedily
// paired with the highest-similarity unused token of b (first-found wins a
// tie), and the summed similarities are divided by the larger token count.
// This makes "John Smith" vs "Smith John" score as an exact match.
func (j *JaroWinkler) TokenSimilarity(a, b string) float64 {
	tokensA := strings.Fields(normalizer.GeneralProfile(a))
	tokensB := strings.Fields(normalizer.GeneralProfile(b))
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	used := make([]bool, len(tokensB))
	var sum float64
	for _, ta := range tokensA {
		best := -1
		bestScore := 0.0
		for i, tb := range tokensB {
			if used[i] {
				continue
			}
			if score := jaroWinkler([]rune(ta), []rune(tb)); score > bestScore {
				best, bestScore = i, score
			}
		}
		if best >= 0 {
			used[best] = true
			sum += bestScore
		}
	}

	maxTokens := len(tokensA)
	if len(tokensB) > maxTokens {
		maxTokens = len(tokensB)
	}
	return sum / float64(maxTokens)
}

func jaroWinkler(a, b []rune) float64 {
	j := jaro(a, b)

	// Winkler prefix boost, capped at 4 characters, scaling factor 0.1
	prefix := 0
	for i := 0; i < len(a) && i < len(b) && i < 4; i++ {
		if a[i] != b[i] {
			break
		}
		prefix++
	}
	return j + float64(prefix)*0.1*(1.0-j)
}

func jaro(a, b []rune) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	if string(a) == string(b) {
		return 1.0
	}

	matchDist := len(a)
	if len(b) > matchDist {
		matchDist = len(b)
	}
	matchDist = matchDist/2 - 1
	if matchDist < 0 {
		matchDist = 0
	}

	aMatches := make([]bool, len(a))
	bMatches := make([]bool, len(b))
	matches := 0

	for i := range a {
		start := i - matchDist
		if start < 0 {
			start = 0
		}
		end := i + matchDist + 1
		if end > len(b) {
			end = len(b)
		}
		for k := start; k < end; k++ {
			if bMatches[k] || a[i] != b[k] {
				continue
			}
			aMatches[i] = true
			bMatches[k] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	transpositions := 0
	k := 0
	for i := range a {
		if !aMatches[i] {
			continue
		}
		for !bMatches[k] {
			k++
		}
		if a[i] != b[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	t := float64(transpositions) / 2
	return (m/float64(len(a)) + m/float64(len(b)) + (m-t)/m) / 3
}
