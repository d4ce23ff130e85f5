// Package watchlist supplies the sanctioned-entry records a screening run
// evaluates against. The list download/diff pipeline lives outside this
// service; providers here only serve already-materialized snapshots.
package watchlist

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Ramsey-B/briar/pkg/models"
)

// Provider is the collaborator the screening service pulls entries from
type Provider interface {
	GetAllEntries(ctx context.Context) ([]models.WatchlistEntry, error)
	GetEntriesBySource(ctx context.Context, source string) ([]models.WatchlistEntry, error)
}

// StaticProvider serves an in-memory snapshot of watchlist entries. It is
// the standard provider for tests and for deployments that mount the list
// as a file.
type StaticProvider struct {
	entries []models.WatchlistEntry
}

// NewStaticProvider creates a provider over the given entries
func NewStaticProvider(entries []models.WatchlistEntry) *StaticProvider {
	return &StaticProvider{entries: entries}
}

// NewFileProvider loads a YAML snapshot {entries: [...]} from disk
func NewFileProvider(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read watchlist snapshot: %w", err)
	}

	var doc struct {
		Entries []models.WatchlistEntry `yaml:"entries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unable to parse watchlist snapshot: %w", err)
	}
	return NewStaticProvider(doc.Entries), nil
}

func (p *StaticProvider) GetAllEntries(_ context.Context) ([]models.WatchlistEntry, error) {
	return p.entries, nil
}

func (p *StaticProvider) GetEntriesBySource(_ context.Context, source string) ([]models.WatchlistEntry, error) {
	filtered := make([]models.WatchlistEntry, 0, len(p.entries))
	for _, entry := range p.entries {
		if strings.EqualFold(entry.ListSource, source) {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}
