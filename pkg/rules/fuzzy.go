package rules

import (
	"github.com/Ramsey-B/briar/pkg/models"
	"github.com/Ramsey-B/briar/pkg/normalizer"
)

// FuzzyEvaluator matches when the edit-distance similarity between the
// source value and the best target candidate reaches the rule's similarity
// threshold. When several aliases tie for best similarity, the
// first-encountered one wins; downstream explanations depend on that being
// stable.
type FuzzyEvaluator struct{}

func (e *FuzzyEvaluator) MatchType() models.MatchType { return models.MatchTypeFuzzy }

func (e *FuzzyEvaluator) Evaluate(rule models.RuleDefinition, customer models.CustomerInfo, entry models.WatchlistEntry) ([]models.MatchedRule, error) {
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

	bestTarget := ""
	bestScore := 0.0
	for _, target := range targets {
		if target == "" {
			continue
		}
		// strictly-greater keeps the first-encountered candidate on ties
		if score := normalizer.CalculateSimilarity(source, target); score > bestScore {
			bestTarget, bestScore = target, score
		}
	}

	if bestTarget == "" || bestScore < rule.Params.SimilarityThreshold {
		return nil, nil
	}

	score := rule.Score.PartialMatch
	if rule.Score.ProportionalToSimilarity {
		score = bestScore * rule.Score.MaxScore
	}
	return []models.MatchedRule{matched(rule, score, source, bestTarget)}, nil
}
