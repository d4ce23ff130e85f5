package rules

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/briar/pkg/models"
)

const validRuleDoc = `
version: "1.0"
description: test rules
rules:
  - id: name-exact
    type: NAME
    description: exact name match
    enabled: true
    priority: 1
    condition:
      match_type: EXACT
      source_field: name
      target_field: name
    score:
      exact_match: 100
      max_score: 100
  - id: name-fuzzy
    type: NAME
    enabled: true
    priority: 2
    condition:
      match_type: FUZZY
      source_field: name
      target_field: aliases
      parameters:
        similarityThreshold: 0.85
    score:
      partial_match: 70
      proportional_to_similarity: true
      max_score: 90
  - id: dob-range
    type: DOB
    enabled: false
    priority: 3
    condition:
      match_type: DATE_RANGE
      source_field: dateOfBirth
      target_field: dateOfBirth
      parameters:
        dateRangeDays: 30
    score:
      exact_match: 30
      partial_match: 20
      max_score: 30
`

func TestParse(t *testing.T) {
	t.Run("should parse a valid document", func(t *testing.T) {
		config, err := Parse([]byte(validRuleDoc))
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		require.Len(t, config.Rules, 3)
		assert.Equal(t, 0.85, config.Rules[1].Params.SimilarityThreshold)
		assert.Equal(t, 30, config.Rules[2].Params.DateRangeDays)
	})

	t.Run("should default the similarity threshold", func(t *testing.T) {
		config, err := Parse([]byte(validRuleDoc))
		require.NoError(t, err)
		assert.Equal(t, DefaultSimilarityThreshold, config.Rules[0].Params.SimilarityThreshold)
	})

	t.Run("should reject invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("rules: ["))
		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Contains(t, configErr.Reason, "unable to parse")
	})

	t.Run("should reject a document without rules", func(t *testing.T) {
		_, err := Parse([]byte(`version: "1.0"`))
		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Contains(t, configErr.Reason, "schema validation")
	})

	t.Run("should reject rules missing required fields", func(t *testing.T) {
		doc := `
version: "1.0"
rules:
  - id: broken
    type: NAME
    enabled: true
    condition:
      match_type: EXACT
      source_field: name
    score:
      exact_match: 100
`
		_, err := Parse([]byte(doc))
		assert.Error(t, err)
	})

	t.Run("should reject duplicate rule ids", func(t *testing.T) {
		doc := `
version: "1.0"
rules:
  - id: dupe
    type: NAME
    enabled: true
    condition: {match_type: EXACT, source_field: name, target_field: name}
    score: {exact_match: 100}
  - id: dupe
    type: NAME
    enabled: true
    condition: {match_type: EXACT, source_field: name, target_field: aliases}
    score: {exact_match: 100}
`
		_, err := Parse([]byte(doc))
		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Contains(t, configErr.Reason, "duplicate rule id")
	})

	t.Run("should reject an out-of-range similarity threshold", func(t *testing.T) {
		doc := `
version: "1.0"
rules:
  - id: bad-threshold
    type: NAME
    enabled: true
    condition:
      match_type: FUZZY
      source_field: name
      target_field: name
      parameters: {similarityThreshold: 1.5}
    score: {partial_match: 70}
`
		_, err := Parse([]byte(doc))
		assert.Error(t, err)
	})

	t.Run("should reject negative date ranges", func(t *testing.T) {
		doc := `
version: "1.0"
rules:
  - id: bad-days
    type: DOB
    enabled: true
    condition:
      match_type: DATE_RANGE
      source_field: dateOfBirth
      target_field: dateOfBirth
      parameters: {dateRangeDays: -5}
    score: {exact_match: 30}
`
		_, err := Parse([]byte(doc))
		assert.Error(t, err)
	})

	t.Run("should ignore unknown parameter keys", func(t *testing.T) {
		doc := `
version: "1.0"
rules:
  - id: annotated
    type: NAME
    enabled: true
    condition:
      match_type: EXACT
      source_field: name
      target_field: name
      parameters: {owner: compliance-team}
    score: {exact_match: 100}
`
		_, err := Parse([]byte(doc))
		assert.NoError(t, err)
	})
}

func TestFileLoader(t *testing.T) {
	t.Run("should load rules from a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validRuleDoc), 0o600))

		config, err := NewFileLoader(path).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, config.Rules, 3)
	})

	t.Run("should report a missing file", func(t *testing.T) {
		_, err := NewFileLoader("/nonexistent/rules.yaml").Load(context.Background())
		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.True(t, errors.Is(configErr.Err, os.ErrNotExist))
	})
}

func TestEnabledByPriority(t *testing.T) {
	t.Run("should drop disabled rules and sort by priority then id", func(t *testing.T) {
		config := &models.RuleConfiguration{
			Version: "1.0",
			Rules: []models.RuleDefinition{
				{ID: "c", Enabled: true, Priority: 2},
				{ID: "b", Enabled: true, Priority: 1},
				{ID: "off", Enabled: false, Priority: 0},
				{ID: "a", Enabled: true, Priority: 2},
			},
		}
		enabled := config.EnabledByPriority()
		require.Len(t, enabled, 3)
		assert.Equal(t, "b", enabled[0].ID)
		assert.Equal(t, "a", enabled[1].ID)
		assert.Equal(t, "c", enabled[2].ID)
	})
}
