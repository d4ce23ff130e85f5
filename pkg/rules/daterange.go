package rules

import (
	"time"

	"github.com/Ramsey-B/briar/pkg/models"
)

// DateRangeEvaluator matches when the two dates fall within the rule's
// configured day distance of each other; zero means the same calendar day.
type DateRangeEvaluator struct{}

func (e *DateRangeEvaluator) MatchType() models.MatchType { return models.MatchTypeDateRange }

func (e *DateRangeEvaluator) Evaluate(rule models.RuleDefinition, customer models.CustomerInfo, entry models.WatchlistEntry) ([]models.MatchedRule, error) {
	source, err := sourceDate(customer, rule.Condition.SourceField)
	if err != nil {
		return nil, err
	}
	target, err := targetDate(entry, rule.Condition.TargetField)
	if err != nil {
		return nil, err
	}
	if source == nil || target == nil {
		return nil, nil
	}

	diff := daysBetween(*source, *target)
	if diff > rule.Params.DateRangeDays {
		return nil, nil
	}

	score := rule.Score.ExactMatch
	if diff > 0 {
		score = rule.Score.PartialMatch
	}
	return []models.MatchedRule{matched(rule, score,
		source.Format("2006-01-02"), target.Format("2006-01-02"))}, nil
}

// daysBetween returns the absolute whole-day distance between two dates,
// comparing calendar days in UTC rather than raw durations.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(ua.Sub(ub).Hours() / 24)
	if diff < 0 {
		diff = -diff
	}
	return diff
}
