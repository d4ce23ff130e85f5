// Package screening orchestrates a full customer screening: every
// watchlist entry is run through the rule engine and the combined facts are
// scored into one decision.
package screening

import (
	"context"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Ramsey-B/briar/pkg/metrics"
	"github.com/Ramsey-B/briar/pkg/models"
	"github.com/Ramsey-B/briar/pkg/rules"
	"github.com/Ramsey-B/briar/pkg/scoring"
	"github.com/Ramsey-B/briar/pkg/tracing"
	"github.com/Ramsey-B/briar/pkg/watchlist"
)

// Config contains configuration for the screening service
type Config struct {
	// Workers bounds the number of watchlist entries evaluated concurrently
	Workers int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{Workers: 4}
}

// Service drives the rule engine across a watchlist and scores the result.
// Upstream failures (provider, missing configuration) propagate to the
// caller: screening is all-or-nothing, while individual rules inside the
// engine stay best-effort.
type Service struct {
	logger   ectologger.Logger
	provider watchlist.Provider
	engine   *rules.Engine
	store    *rules.ConfigStore
	registry *rules.Registry
	scorer   *scoring.Scorer
	cfg      Config
}

// NewService creates a screening service
func NewService(
	logger ectologger.Logger,
	provider watchlist.Provider,
	engine *rules.Engine,
	store *rules.ConfigStore,
	registry *rules.Registry,
	scorer *scoring.Scorer,
	cfg Config,
) *Service {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Service{
		logger:   logger,
		provider: provider,
		engine:   engine,
		store:    store,
		registry: registry,
		scorer:   scorer,
		cfg:      cfg,
	}
}

// FilterCustomer screens one customer against all watchlist entries
func (s *Service) FilterCustomer(ctx context.Context, customer models.CustomerInfo) (*models.FilteringResult, error) {
	entries, err := s.provider.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	return s.filter(ctx, customer, entries)
}

// FilterCustomerBySource screens one customer against a single list source
func (s *Service) FilterCustomerBySource(ctx context.Context, customer models.CustomerInfo, source string) (*models.FilteringResult, error) {
	entries, err := s.provider.GetEntriesBySource(ctx, source)
	if err != nil {
		return nil, err
	}
	return s.filter(ctx, customer, entries)
}

func (s *Service) filter(ctx context.Context, customer models.CustomerInfo, entries []models.WatchlistEntry) (*models.FilteringResult, error) {
	ctx, span := tracing.StartSpan(ctx, "screening.Service.FilterCustomer")
	defer span.End()

	started := time.Now()
	log := s.logger.WithContext(ctx).WithFields(map[string]any{
		"customer_id": customer.CustomerID,
		"entry_count": len(entries),
	})

	// Entries are evaluated concurrently, but facts are collected per entry
	// index so the concatenation order (and with it the explanation) only
	// depends on the provider's entry order.
	perEntry := make([][]models.MatchedRule, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i := range entries {
		g.Go(func() error {
			facts, err := s.engine.ApplyRules(gctx, customer, entries[i])
			if err != nil {
				return err
			}
			perEntry[i] = facts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var allFacts []models.MatchedRule
	for _, facts := range perEntry {
		allFacts = append(allFacts, facts...)
	}

	result := s.scorer.CalculateScore(customer, allFacts)
	result.ID = uuid.NewString()
	result.ScreenedAt = started.UTC()
	result.Duration = time.Since(started)

	metrics.ScreeningsTotal.WithLabelValues(string(result.RiskTier)).Inc()
	metrics.ScreeningDuration.Observe(result.Duration.Seconds())
	metrics.WatchlistEntriesScreened.Add(float64(len(entries)))

	log.WithFields(map[string]any{
		"score":       result.Score,
		"risk_tier":   result.RiskTier,
		"match_count": len(result.MatchedRules),
	}).Debug("Screened customer")

	return &result, nil
}

// CurrentConfiguration returns the active rule configuration snapshot
func (s *Service) CurrentConfiguration() *models.RuleConfiguration {
	return s.store.Current()
}

// ReloadConfiguration atomically swaps in a freshly loaded rule set
func (s *Service) ReloadConfiguration(ctx context.Context) error {
	return s.store.Reload(ctx)
}

// SupportedMatchTypes lists the match types with a registered evaluator
func (s *Service) SupportedMatchTypes() []models.MatchType {
	return s.registry.SupportedMatchTypes()
}
