package rules

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/briar/pkg/metrics"
	"github.com/Ramsey-B/briar/pkg/models"
)

// Loader produces rule configurations from an external declarative source.
// Implementations live outside the screening core (file, object store, ...).
type Loader interface {
	Load(ctx context.Context) (*models.RuleConfiguration, error)
}

// ConfigStore holds the active rule configuration as an immutable snapshot
// behind a single swappable reference. Readers always observe either the
// pre- or post-reload configuration in full; reloads are serialized.
type ConfigStore struct {
	logger   ectologger.Logger
	loader   Loader
	current  atomic.Pointer[models.RuleConfiguration]
	reloadMu sync.Mutex
}

// NewConfigStore loads the initial configuration. A load failure falls back
// to the built-in default rule set and is logged rather than fatal; callers
// that want fail-fast semantics check the returned error.
func NewConfigStore(ctx context.Context, logger ectologger.Logger, loader Loader) (*ConfigStore, error) {
	s := &ConfigStore{logger: logger, loader: loader}

	config, err := loader.Load(ctx)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("Failed to load rule configuration; falling back to built-in defaults")
		fallback := DefaultConfiguration()
		s.current.Store(fallback)
		return s, err
	}

	logger.WithContext(ctx).WithFields(map[string]any{
		"version":    config.Version,
		"rule_count": len(config.Rules),
	}).Info("Loaded rule configuration")
	s.current.Store(config)
	return s, nil
}

// Current returns the active configuration snapshot. The snapshot is shared
// and must be treated as read-only.
func (s *ConfigStore) Current() *models.RuleConfiguration {
	return s.current.Load()
}

// Reload replaces the active configuration with a freshly loaded snapshot.
// On failure the previous snapshot stays active. Only one reload runs at a
// time.
func (s *ConfigStore) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	config, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Rule configuration reload failed; keeping current snapshot")
		metrics.ConfigReloadsTotal.WithLabelValues("failure").Inc()
		return err
	}

	s.current.Store(config)
	s.logger.WithContext(ctx).WithFields(map[string]any{
		"version":    config.Version,
		"rule_count": len(config.Rules),
	}).Info("Reloaded rule configuration")
	metrics.ConfigReloadsTotal.WithLabelValues("success").Inc()
	return nil
}

// DefaultConfiguration is the minimal built-in rule set used when no valid
// external document is available: exact and fuzzy name screening plus date
// of birth corroboration.
func DefaultConfiguration() *models.RuleConfiguration {
	return &models.RuleConfiguration{
		Version:     "builtin-1",
		Description: "Built-in fallback screening rules",
		Rules: []models.RuleDefinition{
			{
				ID:          "default-name-exact",
				Type:        "NAME",
				Description: "Exact name match against the primary list name",
				Enabled:     true,
				Priority:    1,
				Condition: models.RuleCondition{
					MatchType:   models.MatchTypeExact,
					SourceField: FieldName,
					TargetField: FieldName,
				},
				Score: models.ScorePolicy{ExactMatch: 100, MaxScore: 100},
			},
			{
				ID:          "default-name-fuzzy",
				Type:        "NAME",
				Description: "Fuzzy name match against the primary list name",
				Enabled:     true,
				Priority:    2,
				Condition: models.RuleCondition{
					MatchType:   models.MatchTypeFuzzy,
					SourceField: FieldName,
					TargetField: FieldName,
				},
				Score:  models.ScorePolicy{PartialMatch: 70, ProportionalToSimilarity: true, MaxScore: 90},
				Params: models.ConditionParams{SimilarityThreshold: DefaultSimilarityThreshold},
			},
			{
				ID:          "default-dob-exact",
				Type:        "DOB",
				Description: "Date of birth corroboration",
				Enabled:     true,
				Priority:    3,
				Condition: models.RuleCondition{
					MatchType:   models.MatchTypeDateRange,
					SourceField: FieldDateOfBirth,
					TargetField: FieldDateOfBirth,
				},
				Score: models.ScorePolicy{ExactMatch: 30, PartialMatch: 20, MaxScore: 30},
			},
		},
	}
}
