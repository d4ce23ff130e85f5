package matching

// CompositeWeights is one blend profile for the composite strategy
type CompositeWeights struct {
	JaroWinkler float64 `json:"jaro_winkler" yaml:"jaro_winkler"`
	Metaphone   float64 `json:"metaphone" yaml:"metaphone"`
	NGram       float64 `json:"ngram" yaml:"ngram"`
	Korean      float64 `json:"korean" yaml:"korean"`
}

// CompositeConfig selects the blend weights. HangulWeights applies when the
// Korean strategy produced a non-zero score, LatinWeights otherwise. Both
// profiles are externally tunable.
type CompositeConfig struct {
	Threshold     float64          `json:"threshold" yaml:"threshold"`
	LatinWeights  CompositeWeights `json:"latin_weights" yaml:"latin_weights"`
	HangulWeights CompositeWeights `json:"hangul_weights" yaml:"hangul_weights"`
}

// DefaultCompositeThreshold is the blended-score floor for a composite match
const DefaultCompositeThreshold = 0.75

// DefaultCompositeConfig returns the default blend profiles
func DefaultCompositeConfig() CompositeConfig {
	return CompositeConfig{
		Threshold:     DefaultCompositeThreshold,
		LatinWeights:  CompositeWeights{JaroWinkler: 0.4, Metaphone: 0.3, NGram: 0.3},
		HangulWeights: CompositeWeights{JaroWinkler: 0.3, Metaphone: 0.2, NGram: 0.2, Korean: 0.3},
	}
}

// Composite blends Jaro-Winkler, Metaphone, N-Gram and Korean scores into a
// single similarity. A phonetic (Metaphone) match alone is treated as high
// confidence even when the blended score falls below the threshold.
type Composite struct {
	cfg         CompositeConfig
	jaroWinkler *JaroWinkler
	metaphone   *Metaphone
	ngram       *NGram
	korean      *Korean
}

// NewComposite creates a Composite strategy from default sub-strategies
func NewComposite(cfg CompositeConfig) *Composite {
	return &Composite{
		cfg:         cfg,
		jaroWinkler: NewJaroWinkler(DefaultJaroWinklerThreshold),
		metaphone:   NewMetaphone(),
		ngram:       NewNGram(DefaultNGramSize, DefaultNGramThreshold),
		korean:      NewKorean(DefaultKoreanThreshold),
	}
}

func (c *Composite) Name() string { return "composite" }

func (c *Composite) IsApplicable(v string) bool { return applicable(v) }

// Similarity returns the weighted blend of the component similarities. The
// Hangul profile is used whenever the Korean comparison contributes.
func (c *Composite) Similarity(a, b string) float64 {
	jw := c.jaroWinkler.Similarity(a, b)
	mp := c.metaphone.Similarity(a, b)
	ng := c.ngram.Similarity(a, b)
	ko := c.korean.Similarity(a, b)

	weights := c.cfg.LatinWeights
	if ko > 0 {
		weights = c.cfg.HangulWeights
	}
	return jw*weights.JaroWinkler + mp*weights.Metaphone + ng*weights.NGram + ko*weights.Korean
}

func (c *Composite) Matches(a, b string) bool {
	return c.IsHighConfidenceMatch(a, b, c.cfg.Threshold)
}

// IsHighConfidenceMatch reports a match when the blended score reaches the
// threshold or the names match phonetically on Metaphone.
func (c *Composite) IsHighConfidenceMatch(a, b string, threshold float64) bool {
	if c.metaphone.Matches(a, b) {
		return true
	}
	return c.Similarity(a, b) >= threshold
}
