// Package matching implements the name-matching strategies used by the
// screening rules: phonetic encoders, string similarity metrics, Hangul
// comparison and a weighted composite. Every strategy is stateless and safe
// for concurrent use.
package matching

import "strings"

// Strategy is the common contract all matching algorithms implement.
// Implementations return 0.0/false on nil, empty or inapplicable input
// rather than failing.
type Strategy interface {
	// Name returns the registry identifier of the strategy
	Name() string
	// Similarity returns a score in [0, 1]
	Similarity(a, b string) float64
	// Matches reports whether the two values match per the strategy's rule
	Matches(a, b string) bool
	// IsApplicable reports whether the strategy can compare the value
	IsApplicable(s string) bool
}

// registry holds all registered strategies by name
var registry = make(map[string]Strategy)

// Register adds a strategy to the registry, replacing any previous entry
// with the same name.
func Register(s Strategy) {
	registry[s.Name()] = s
}

// Get retrieves a strategy by name
func Get(name string) (Strategy, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered strategy names
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// applicable is the default IsApplicable: non-blank input
func applicable(s string) bool {
	return strings.TrimSpace(s) != ""
}

func init() {
	// default instances; callers needing custom thresholds construct their own
	Register(NewSoundex())
	Register(NewMetaphone())
	Register(NewJaroWinkler(DefaultJaroWinklerThreshold))
	Register(NewNGram(DefaultNGramSize, DefaultNGramThreshold))
	Register(NewKorean(DefaultKoreanThreshold))
	Register(NewComposite(DefaultCompositeConfig()))
}
