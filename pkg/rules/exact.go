package rules

import (
	"github.com/Ramsey-B/briar/pkg/models"
	"github.com/Ramsey-B/briar/pkg/normalizer"
)

// ExactEvaluator matches on normalized equality: case-insensitive and
// token-order-insensitive for names, trimmed uppercase for nationalities,
// same calendar day for dates. Multi-valued targets match if any value is
// equal to the source.
type ExactEvaluator struct{}

func (e *ExactEvaluator) MatchType() models.MatchType { return models.MatchTypeExact }

func (e *ExactEvaluator) Evaluate(rule models.RuleDefinition, customer models.CustomerInfo, entry models.WatchlistEntry) ([]models.MatchedRule, error) {
	if isDateField(rule.Condition.SourceField) {
		return e.evaluateDate(rule, customer, entry)
	}

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
		if e.equal(rule.Condition.SourceField, source, target) {
			return []models.MatchedRule{matched(rule, rule.Score.ExactMatch, source, target)}, nil
		}
	}
	return nil, nil
}

func (e *ExactEvaluator) equal(field, source, target string) bool {
	if isNationalityField(field) {
		return normalizer.NormalizeNationality(source) == normalizer.NormalizeNationality(target)
	}
	ns := normalizer.NormalizeName(source)
	return ns != "" && ns == normalizer.NormalizeName(target)
}

func (e *ExactEvaluator) evaluateDate(rule models.RuleDefinition, customer models.CustomerInfo, entry models.WatchlistEntry) ([]models.MatchedRule, error) {
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

	sy, sm, sd := source.Date()
	ty, tm, td := target.Date()
	if sy == ty && sm == tm && sd == td {
		return []models.MatchedRule{matched(rule, rule.Score.ExactMatch,
			source.Format("2006-01-02"), target.Format("2006-01-02"))}, nil
	}
	return nil, nil
}
