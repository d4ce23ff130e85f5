package matching

import (
	"strings"

	"github.com/Ramsey-B/briar/pkg/normalizer"
)

// Defaults for the n-gram strategy: character bigrams with a Jaccard
// threshold of 0.5.
const (
	DefaultNGramSize      = 2
	DefaultNGramThreshold = 0.5
)

// NGram compares names by the Jaccard overlap of their character n-gram
// sets, which tolerates typos and small spelling variations.
type NGram struct {
	size      int
	threshold float64
}

// NewNGram creates an NGram strategy with the given gram size and threshold
func NewNGram(size int, threshold float64) *NGram {
	if size < 1 {
		size = DefaultNGramSize
	}
	return &NGram{size: size, threshold: threshold}
}

func (n *NGram) Name() string { return "ngram" }

func (n *NGram) IsApplicable(v string) bool { return applicable(v) }

// Similarity is the Jaccard index of the two n-gram sets. Grams are taken
// over the padded form of the name: spaces become '_' and the whole value is
// wrapped in '_' so word boundaries produce their own grams. Values shorter
// than the gram size only match on equality.
func (n *NGram) Similarity(a, b string) float64 {
	pa, pb := n.pad(a), n.pad(b)
	if pa == "" || pb == "" {
		return 0.0
	}

	ra, rb := []rune(pa), []rune(pb)
	if len(ra) < n.size || len(rb) < n.size {
		if pa == pb {
			return 1.0
		}
		return 0.0
	}

	gramsA := n.grams(ra)
	gramsB := n.grams(rb)
	shared := 0
	for g := range gramsA {
		if _, ok := gramsB[g]; ok {
			shared++
		}
	}
	union := len(gramsA) + len(gramsB) - shared
	if union == 0 {
		return 0.0
	}
	return float64(shared) / float64(union)
}

func (n *NGram) Matches(a, b string) bool {
	return n.Similarity(a, b) >= n.threshold
}

func (n *NGram) pad(v string) string {
	nv := normalizer.GeneralProfile(v)
	if nv == "" {
		return ""
	}
	return "_" + strings.ReplaceAll(nv, " ", "_") + "_"
}

func (n *NGram) grams(runes []rune) map[string]struct{} {
	set := make(map[string]struct{}, len(runes))
	for i := 0; i+n.size <= len(runes); i++ {
		set[string(runes[i:i+n.size])] = struct{}{}
	}
	return set
}
