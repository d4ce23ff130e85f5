package models

import "time"

// RiskTier is the outcome band a screening score falls into
type RiskTier string

const (
	RiskTierAlert  RiskTier = "ALERT"    // score >= alert threshold, reject and escalate
	RiskTierReview RiskTier = "REVIEW"   // score >= review threshold, enhanced due diligence
	RiskTierLow    RiskTier = "LOW_RISK" // standard processing
)

// MatchedRule is one evaluation fact: a rule that fired for one customer /
// watchlist-entry pair. It is produced by an evaluator and never mutated.
type MatchedRule struct {
	RuleName     string  `json:"rule_name"`
	RuleType     string  `json:"rule_type"`
	Score        float64 `json:"score"`
	MatchedValue string  `json:"matched_value"`
	TargetValue  string  `json:"target_value"`
	Description  string  `json:"description,omitempty"`
}

// FilteringResult is the final screening decision for one customer.
// Score is always within [0, 100] and the explanation is reproducible
// from the same matched rules in the same order.
type FilteringResult struct {
	ID           string        `json:"id"`
	Alert        bool          `json:"alert"`
	Score        float64       `json:"score"`
	RiskTier     RiskTier      `json:"risk_tier"`
	MatchedRules []MatchedRule `json:"matched_rules"`
	Explanation  string        `json:"explanation"`
	Customer     CustomerInfo  `json:"customer"`
	ScreenedAt   time.Time     `json:"screened_at"`
	Duration     time.Duration `json:"duration_ms"`
}
