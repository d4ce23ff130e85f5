package rules

import (
	"context"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/briar/pkg/metrics"
	"github.com/Ramsey-B/briar/pkg/models"
	"github.com/Ramsey-B/briar/pkg/tracing"
)

// Engine evaluates every enabled rule against one customer / watchlist-entry
// pair. Rule evaluation is best-effort: a failing or unsupported rule is
// logged and skipped, and all remaining rules still run.
type Engine struct {
	logger   ectologger.Logger
	store    *ConfigStore
	registry *Registry
}

// RuleOutcome is the result of evaluating a single rule: either the facts
// it emitted or the diagnostic that made it skip.
type RuleOutcome struct {
	RuleID  string
	Matches []models.MatchedRule
	Err     error
	Skipped string // non-empty when the rule was skipped without running
}

// EvaluationReport collects the per-rule outcomes for one pair
type EvaluationReport struct {
	Outcomes []RuleOutcome
}

// MatchedRules returns the concatenated facts of all successful outcomes,
// in rule evaluation order.
func (r *EvaluationReport) MatchedRules() []models.MatchedRule {
	var all []models.MatchedRule
	for _, outcome := range r.Outcomes {
		all = append(all, outcome.Matches...)
	}
	return all
}

// NewEngine creates a rule engine backed by the given configuration store
func NewEngine(logger ectologger.Logger, store *ConfigStore, registry *Registry) *Engine {
	return &Engine{
		logger:   logger,
		store:    store,
		registry: registry,
	}
}

// ApplyRules evaluates all enabled rules in priority order and returns the
// concatenated matched-rule facts.
func (e *Engine) ApplyRules(ctx context.Context, customer models.CustomerInfo, entry models.WatchlistEntry) ([]models.MatchedRule, error) {
	report, err := e.Evaluate(ctx, customer, entry)
	if err != nil {
		return nil, err
	}
	return report.MatchedRules(), nil
}

// Evaluate runs every enabled rule and reports each outcome individually
func (e *Engine) Evaluate(ctx context.Context, customer models.CustomerInfo, entry models.WatchlistEntry) (*EvaluationReport, error) {
	ctx, span := tracing.StartSpan(ctx, "rules.Engine.Evaluate")
	defer span.End()

	config := e.store.Current()
	if config == nil {
		return nil, ErrNoConfiguration
	}

	log := e.logger.WithContext(ctx).WithFields(map[string]any{
		"customer_id": customer.CustomerID,
		"entry_id":    entry.ID,
	})

	enabled := config.EnabledByPriority()
	report := &EvaluationReport{Outcomes: make([]RuleOutcome, 0, len(enabled))}

	for _, rule := range enabled {
		evaluator, ok := e.registry.Get(rule.Condition.MatchType)
		if !ok {
			log.WithFields(map[string]any{
				"rule_id":    rule.ID,
				"match_type": rule.Condition.MatchType,
			}).Warn("No evaluator registered for match type; skipping rule")
			report.Outcomes = append(report.Outcomes, RuleOutcome{
				RuleID:  rule.ID,
				Skipped: "unsupported match type " + string(rule.Condition.MatchType),
			})
			continue
		}

		facts, err := evaluator.Evaluate(rule, customer, entry)
		if err != nil {
			// one bad rule never blocks the rest
			log.WithError(err).WithFields(map[string]any{"rule_id": rule.ID}).Warn("Rule evaluation failed; skipping rule")
			metrics.RuleEvaluationFailures.WithLabelValues(rule.ID).Inc()
			report.Outcomes = append(report.Outcomes, RuleOutcome{RuleID: rule.ID, Err: err})
			continue
		}

		report.Outcomes = append(report.Outcomes, RuleOutcome{RuleID: rule.ID, Matches: facts})
	}

	return report, nil
}
