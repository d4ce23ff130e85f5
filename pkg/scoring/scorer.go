// Package scoring turns matched-rule facts into a deterministic risk score,
// alert decision and audit explanation.
package scoring

import (
	"fmt"
	"strings"

	"github.com/Ramsey-B/briar/pkg/models"
)

// Default decision thresholds; both are externally tunable
const (
	DefaultAlertThreshold  = 70.0
	DefaultReviewThreshold = 50.0
)

// MaxScore caps the aggregate screening score
const MaxScore = 100.0

// Config carries the decision thresholds
type Config struct {
	AlertThreshold  float64
	ReviewThreshold float64
}

// DefaultConfig returns the default thresholds
func DefaultConfig() Config {
	return Config{
		AlertThreshold:  DefaultAlertThreshold,
		ReviewThreshold: DefaultReviewThreshold,
	}
}

// Scorer aggregates matched rules into a FilteringResult
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer with the given thresholds
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// CalculateScore aggregates all matched-rule facts for one customer into a
// single decision. Only the maximum score per rule type counts (an exact
// and a fuzzy name rule firing together must not double-count), the
// per-type maxima are summed, and the total is capped at 100. The
// explanation is exactly reproducible from the same facts in the same
// order.
func (s *Scorer) CalculateScore(customer models.CustomerInfo, matchedRules []models.MatchedRule) models.FilteringResult {
	if len(matchedRules) == 0 {
		return models.FilteringResult{
			Alert:        false,
			Score:        0.0,
			RiskTier:     models.RiskTierLow,
			MatchedRules: []models.MatchedRule{},
			Explanation:  "No matches found",
			Customer:     customer,
		}
	}

	// group by rule type and keep only each type's maximum
	typeMax := make(map[string]float64)
	typeOrder := make([]string, 0, len(matchedRules))
	for _, rule := range matchedRules {
		if _, seen := typeMax[rule.RuleType]; !seen {
			typeOrder = append(typeOrder, rule.RuleType)
		}
		if rule.Score > typeMax[rule.RuleType] {
			typeMax[rule.RuleType] = rule.Score
		}
	}

	score := 0.0
	for _, t := range typeOrder {
		score += typeMax[t]
	}
	if score > MaxScore {
		score = MaxScore
	}

	tier := models.RiskTierLow
	switch {
	case score >= s.cfg.AlertThreshold:
		tier = models.RiskTierAlert
	case score >= s.cfg.ReviewThreshold:
		tier = models.RiskTierReview
	}

	return models.FilteringResult{
		Alert:        tier == models.RiskTierAlert,
		Score:        score,
		RiskTier:     tier,
		MatchedRules: matchedRules,
		Explanation:  buildExplanation(score, tier, matchedRules),
		Customer:     customer,
	}
}

// buildExplanation renders the audit trail: a risk banner, one line per
// matched rule in input order, and the tier recommendation.
func buildExplanation(score float64, tier models.RiskTier, matchedRules []models.MatchedRule) string {
	var b strings.Builder

	switch tier {
	case models.RiskTierAlert:
		fmt.Fprintf(&b, "HIGH RISK - sanctions screening alert (score %.1f/100)\n", score)
	case models.RiskTierReview:
		fmt.Fprintf(&b, "MEDIUM RISK - manual review required (score %.1f/100)\n", score)
	default:
		fmt.Fprintf(&b, "LOW RISK - no significant matches (score %.1f/100)\n", score)
	}

	for _, rule := range matchedRules {
		fmt.Fprintf(&b, "- [%s] %s scored %.1f: %s (matched %q against %q)\n",
			rule.RuleType, rule.RuleName, rule.Score, rule.Description, rule.MatchedValue, rule.TargetValue)
	}

	switch tier {
	case models.RiskTierAlert:
		b.WriteString("Recommendation: reject transaction and escalate to the compliance team")
	case models.RiskTierReview:
		b.WriteString("Recommendation: apply enhanced due diligence before proceeding")
	default:
		b.WriteString("Recommendation: proceed with standard processing")
	}

	return b.String()
}
