package rules

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/Ramsey-B/briar/pkg/models"
)

// DefaultSimilarityThreshold applies to FUZZY conditions that don't set one
const DefaultSimilarityThreshold = 0.8

var validate = validator.New()

// FileLoader reads the rule document {version, description, rules[]} from a
// YAML file. The document is validated and its loosely typed condition
// parameters are resolved into typed values once, at load time.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the given rule document path
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) Load(_ context.Context) (*models.RuleConfiguration, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, &ConfigurationError{Reason: "unable to read rule document", Err: err}
	}
	return Parse(data)
}

// Parse validates and resolves a raw rule document
func Parse(data []byte) (*models.RuleConfiguration, error) {
	var config models.RuleConfiguration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, &ConfigurationError{Reason: "unable to parse rule document", Err: err}
	}

	if err := validate.Struct(&config); err != nil {
		return nil, &ConfigurationError{Reason: "schema validation failed", Err: err}
	}

	seen := make(map[string]struct{}, len(config.Rules))
	for i := range config.Rules {
		rule := &config.Rules[i]
		if _, dup := seen[rule.ID]; dup {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("duplicate rule id %q", rule.ID)}
		}
		seen[rule.ID] = struct{}{}

		params, err := resolveParams(rule.Condition)
		if err != nil {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("rule %q has invalid parameters", rule.ID), Err: err}
		}
		rule.Params = params
	}

	return &config, nil
}

// resolveParams converts the loosely typed parameter map of a condition
// into the typed form the evaluators consume. Unknown keys are ignored so
// rule documents can carry operator annotations.
func resolveParams(cond models.RuleCondition) (models.ConditionParams, error) {
	params := models.ConditionParams{
		SimilarityThreshold: DefaultSimilarityThreshold,
	}

	if raw, ok := cond.Parameters["similarityThreshold"]; ok {
		threshold, err := cast.ToFloat64E(raw)
		if err != nil {
			return params, fmt.Errorf("similarityThreshold: %w", err)
		}
		if threshold < 0 || threshold > 1 {
			return params, fmt.Errorf("similarityThreshold %v out of range [0,1]", threshold)
		}
		params.SimilarityThreshold = threshold
	}

	if raw, ok := cond.Parameters["dateRangeDays"]; ok {
		days, err := cast.ToIntE(raw)
		if err != nil {
			return params, fmt.Errorf("dateRangeDays: %w", err)
		}
		if days < 0 {
			return params, fmt.Errorf("dateRangeDays %d must not be negative", days)
		}
		params.DateRangeDays = days
	}

	return params, nil
}
