package rules

import (
	"github.com/Ramsey-B/briar/pkg/models"
	"github.com/Ramsey-B/briar/pkg/normalizer"
)

// ContainsEvaluator matches when every normalized token of the customer
// value appears inside the target value. Useful for partial-name rules
// where the watchlist entry carries a longer full name.
type ContainsEvaluator struct{}

func (e *ContainsEvaluator) MatchType() models.MatchType { return models.MatchTypeContains }

func (e *ContainsEvaluator) Evaluate(rule models.RuleDefinition, customer models.CustomerInfo, entry models.WatchlistEntry) ([]models.MatchedRule, error) {
	source, err := sourceText(customer, rule.Condition.SourceField)
	if err != nil {
		return nil, err
	}
	targets, err := targetTexts(entry, rule.Condition.TargetField)
	if err != nil {
		return nil, err
	}
	if source == "" {
		return nil, nil
	}

	for _, target := range targets {
		if target == "" {
			continue
		}
		if normalizer.ContainsAllWords(target, source) {
			return []models.MatchedRule{matched(rule, rule.Score.PartialMatch, source, target)}, nil
		}
	}
	return nil, nil
}
