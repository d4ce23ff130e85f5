package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/briar/pkg/models"
)

func engineWith(t *testing.T, config *models.RuleConfiguration) *Engine {
	t.Helper()
	store, err := NewConfigStore(context.Background(), testLogger(), &stubLoader{config: config})
	require.NoError(t, err)
	return NewEngine(testLogger(), store, NewRegistry())
}

func TestEngineEvaluate(t *testing.T) {
	ctx := context.Background()
	customer := models.CustomerInfo{CustomerID: "c-1", Name: "John Smith"}
	entry := models.WatchlistEntry{ID: "w-1", Name: "John Smith", ListSource: "OFAC"}

	t.Run("should run enabled rules in priority order", func(t *testing.T) {
		config := &models.RuleConfiguration{
			Version: "test",
			Rules: []models.RuleDefinition{
				{
					ID: "second", Type: "NAME", Enabled: true, Priority: 2,
					Condition: models.RuleCondition{MatchType: models.MatchTypeFuzzy, SourceField: FieldName, TargetField: FieldName},
					Score:     models.ScorePolicy{PartialMatch: 70},
					Params:    models.ConditionParams{SimilarityThreshold: 0.8},
				},
				{
					ID: "first", Type: "NAME", Enabled: true, Priority: 1,
					Condition: models.RuleCondition{MatchType: models.MatchTypeExact, SourceField: FieldName, TargetField: FieldName},
					Score:     models.ScorePolicy{ExactMatch: 100},
				},
			},
		}

		report, err := engineWith(t, config).Evaluate(ctx, customer, entry)
		require.NoError(t, err)
		require.Len(t, report.Outcomes, 2)
		assert.Equal(t, "first", report.Outcomes[0].RuleID)
		assert.Equal(t, "second", report.Outcomes[1].RuleID)

		facts := report.MatchedRules()
		require.Len(t, facts, 2)
		assert.Equal(t, 100.0, facts[0].Score)
		assert.Equal(t, 70.0, facts[1].Score)
	})

	t.Run("should skip unsupported match types and keep going", func(t *testing.T) {
		config := &models.RuleConfiguration{
			Version: "test",
			Rules: []models.RuleDefinition{
				{
					ID: "supported-1", Type: "NAME", Enabled: true, Priority: 1,
					Condition: models.RuleCondition{MatchType: models.MatchTypeExact, SourceField: FieldName, TargetField: FieldName},
					Score:     models.ScorePolicy{ExactMatch: 100},
				},
				{
					ID: "bogus", Type: "NAME", Enabled: true, Priority: 2,
					Condition: models.RuleCondition{MatchType: models.MatchType("BOGUS"), SourceField: FieldName, TargetField: FieldName},
					Score:     models.ScorePolicy{ExactMatch: 50},
				},
				{
					ID: "supported-2", Type: "LIST", Enabled: true, Priority: 3,
					Condition: models.RuleCondition{MatchType: models.MatchTypeExact, SourceField: FieldCustomerID, TargetField: FieldListSource},
					Score:     models.ScorePolicy{ExactMatch: 10},
				},
			},
		}

		report, err := engineWith(t, config).Evaluate(ctx, customer, entry)
		require.NoError(t, err)
		require.Len(t, report.Outcomes, 3)
		assert.Empty(t, report.Outcomes[0].Skipped)
		assert.Contains(t, report.Outcomes[1].Skipped, "BOGUS")
		assert.Empty(t, report.Outcomes[2].Skipped)

		// only the first rule fires; the bogus rule contributes nothing
		facts := report.MatchedRules()
		require.Len(t, facts, 1)
		assert.Equal(t, "supported-1", facts[0].RuleName)
	})

	t.Run("should continue after a failing rule", func(t *testing.T) {
		config := &models.RuleConfiguration{
			Version: "test",
			Rules: []models.RuleDefinition{
				{
					ID: "broken-field", Type: "NAME", Enabled: true, Priority: 1,
					Condition: models.RuleCondition{MatchType: models.MatchTypeExact, SourceField: "passport", TargetField: FieldName},
					Score:     models.ScorePolicy{ExactMatch: 100},
				},
				{
					ID: "healthy", Type: "NAME", Enabled: true, Priority: 2,
					Condition: models.RuleCondition{MatchType: models.MatchTypeExact, SourceField: FieldName, TargetField: FieldName},
					Score:     models.ScorePolicy{ExactMatch: 100},
				},
			},
		}

		report, err := engineWith(t, config).Evaluate(ctx, customer, entry)
		require.NoError(t, err)
		require.Len(t, report.Outcomes, 2)
		assert.Error(t, report.Outcomes[0].Err)
		require.NoError(t, report.Outcomes[1].Err)
		assert.Len(t, report.MatchedRules(), 1)
	})

	t.Run("should ignore disabled rules", func(t *testing.T) {
		config := &models.RuleConfiguration{
			Version: "test",
			Rules: []models.RuleDefinition{
				{
					ID: "off", Type: "NAME", Enabled: false, Priority: 1,
					Condition: models.RuleCondition{MatchType: models.MatchTypeExact, SourceField: FieldName, TargetField: FieldName},
					Score:     models.ScorePolicy{ExactMatch: 100},
				},
			},
		}

		report, err := engineWith(t, config).Evaluate(ctx, customer, entry)
		require.NoError(t, err)
		assert.Empty(t, report.Outcomes)
	})
}

func TestEngineApplyRules(t *testing.T) {
	t.Run("should return the concatenated facts", func(t *testing.T) {
		engine := engineWith(t, DefaultConfiguration())
		facts, err := engine.ApplyRules(context.Background(),
			models.CustomerInfo{CustomerID: "c-1", Name: "John Smith"},
			models.WatchlistEntry{ID: "w-1", Name: "John Smith"})
		require.NoError(t, err)
		// exact and fuzzy name rules both fire on an identical name
		require.Len(t, facts, 2)
		assert.Equal(t, "default-name-exact", facts[0].RuleName)
		assert.Equal(t, "default-name-fuzzy", facts[1].RuleName)
	})
}
