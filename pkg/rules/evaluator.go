// Package rules implements the declaratively configured screening rules:
// the evaluator per condition kind, the evaluator registry, the rule engine
// that drives them, and the configuration store with hot reload.
package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ramsey-B/briar/pkg/models"
)

// Evaluator evaluates one kind of rule condition against a customer /
// watchlist-entry pair, returning zero or more matched-rule facts.
type Evaluator interface {
	MatchType() models.MatchType
	Evaluate(rule models.RuleDefinition, customer models.CustomerInfo, entry models.WatchlistEntry) ([]models.MatchedRule, error)
}

// Registry maps a condition's match type to its evaluator
type Registry struct {
	evaluators map[models.MatchType]Evaluator
}

// NewRegistry creates a registry with the built-in evaluators
func NewRegistry() *Registry {
	r := &Registry{evaluators: make(map[models.MatchType]Evaluator)}
	r.Register(&ExactEvaluator{})
	r.Register(&FuzzyEvaluator{})
	r.Register(&ContainsEvaluator{})
	r.Register(&DateRangeEvaluator{})
	return r
}

// Register adds an evaluator, replacing any previous one for its match type
func (r *Registry) Register(e Evaluator) {
	r.evaluators[e.MatchType()] = e
}

// Get retrieves the evaluator for a match type
func (r *Registry) Get(matchType models.MatchType) (Evaluator, bool) {
	e, ok := r.evaluators[matchType]
	return e, ok
}

// SupportedMatchTypes returns the registered match types
func (r *Registry) SupportedMatchTypes() []models.MatchType {
	types := make([]models.MatchType, 0, len(r.evaluators))
	for t := range r.evaluators {
		types = append(types, t)
	}
	return types
}

// Source and target field names a rule condition may reference
const (
	FieldName        = "name"
	FieldAliases     = "aliases"
	FieldDateOfBirth = "dateOfBirth"
	FieldNationality = "nationality"
	FieldCustomerID  = "customerId"
	FieldListSource  = "listSource"
	FieldEntryType   = "entryType"
)

// sourceText reads a text field off the customer
func sourceText(c models.CustomerInfo, field string) (string, error) {
	switch field {
	case FieldName:
		return c.Name, nil
	case FieldNationality:
		return c.Nationality, nil
	case FieldCustomerID:
		return c.CustomerID, nil
	default:
		return "", fmt.Errorf("unknown customer field %q", field)
	}
}

// targetTexts reads a text field off the watchlist entry; aliases yield
// multiple candidate values.
func targetTexts(e models.WatchlistEntry, field string) ([]string, error) {
	switch field {
	case FieldName:
		return []string{e.Name}, nil
	case FieldAliases:
		return e.Aliases, nil
	case FieldNationality:
		return []string{e.Nationality}, nil
	case FieldListSource:
		return []string{e.ListSource}, nil
	case FieldEntryType:
		return []string{e.EntryType}, nil
	default:
		return nil, fmt.Errorf("unknown watchlist field %q", field)
	}
}

func sourceDate(c models.CustomerInfo, field string) (*time.Time, error) {
	if field != FieldDateOfBirth {
		return nil, fmt.Errorf("unknown customer date field %q", field)
	}
	return c.DateOfBirth, nil
}

func targetDate(e models.WatchlistEntry, field string) (*time.Time, error) {
	if field != FieldDateOfBirth {
		return nil, fmt.Errorf("unknown watchlist date field %q", field)
	}
	return e.DateOfBirth, nil
}

func isDateField(field string) bool {
	return field == FieldDateOfBirth
}

func isNationalityField(field string) bool {
	return strings.EqualFold(field, FieldNationality)
}

// matched builds the fact an evaluator emits when a rule fires
func matched(rule models.RuleDefinition, score float64, matchedValue, targetValue string) models.MatchedRule {
	return models.MatchedRule{
		RuleName:     rule.ID,
		RuleType:     rule.Type,
		Score:        score,
		MatchedValue: matchedValue,
		TargetValue:  targetValue,
		Description:  rule.Description,
	}
}
