package models

import "sort"

// MatchType defines the kind of comparison a rule condition performs
type MatchType string

const (
	MatchTypeExact     MatchType = "EXACT"      // Normalized, token-order-insensitive equality
	MatchTypeFuzzy     MatchType = "FUZZY"      // Similarity-threshold match (edit distance)
	MatchTypeContains  MatchType = "CONTAINS"   // Token-subset containment
	MatchTypeDateRange MatchType = "DATE_RANGE" // Date proximity in days
)

// RuleCondition describes what a rule compares: a field on the customer
// against a field on the watchlist entry. Target fields may be multi-valued
// (e.g. aliases). Parameters are loosely typed in the rule document and are
// parsed into ConditionParams at load time.
type RuleCondition struct {
	MatchType   MatchType      `json:"match_type" yaml:"match_type" validate:"required"`
	SourceField string         `json:"source_field" yaml:"source_field" validate:"required"`
	TargetField string         `json:"target_field" yaml:"target_field" validate:"required"`
	Parameters  map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// ConditionParams is the typed form of RuleCondition.Parameters
type ConditionParams struct {
	SimilarityThreshold float64 // FUZZY: minimum similarity to match (default 0.8)
	DateRangeDays       int     // DATE_RANGE: max day distance, 0 = same day
}

// ScorePolicy controls how many points a matched rule contributes
type ScorePolicy struct {
	ExactMatch               float64 `json:"exact_match" yaml:"exact_match"`
	PartialMatch             float64 `json:"partial_match" yaml:"partial_match"`
	ProportionalToSimilarity bool    `json:"proportional_to_similarity" yaml:"proportional_to_similarity"`
	MaxScore                 float64 `json:"max_score" yaml:"max_score"`
}

// RuleDefinition is one declarative screening rule. Rules are parsed once
// from the external rule document and cached; lower priority runs earlier.
type RuleDefinition struct {
	ID          string        `json:"id" yaml:"id" validate:"required"`
	Type        string        `json:"type" yaml:"type" validate:"required"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	Priority    int           `json:"priority" yaml:"priority"`
	Condition   RuleCondition `json:"condition" yaml:"condition" validate:"required"`
	Score       ScorePolicy   `json:"score" yaml:"score" validate:"required"`

	// Params is the typed view of Condition.Parameters, resolved at load time
	Params ConditionParams `json:"-" yaml:"-"`
}

// RuleConfiguration is a full, immutable rule set snapshot. A reload replaces
// the whole snapshot; readers never observe a partially updated set.
type RuleConfiguration struct {
	Version     string           `json:"version" yaml:"version" validate:"required"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Rules       []RuleDefinition `json:"rules" yaml:"rules" validate:"required,min=1,dive"`
}

// EnabledByPriority returns the enabled rules sorted ascending by priority.
// Ties are broken by rule ID so evaluation order is deterministic.
func (c *RuleConfiguration) EnabledByPriority() []RuleDefinition {
	enabled := make([]RuleDefinition, 0, len(c.Rules))
	for _, r := range c.Rules {
		if r.Enabled {
			enabled = append(enabled, r)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		if enabled[i].Priority != enabled[j].Priority {
			return enabled[i].Priority < enabled[j].Priority
		}
		return enabled[i].ID < enabled[j].ID
	})
	return enabled
}
