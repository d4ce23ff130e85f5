package watchlist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/briar/pkg/models"
)

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()
	entries := []models.WatchlistEntry{
		{ID: "w-1", Name: "Ivan Petrov", ListSource: "OFAC"},
		{ID: "w-2", Name: "John Doe", ListSource: "UN"},
		{ID: "w-3", Name: "Jane Doe", ListSource: "ofac"},
	}
	p := NewStaticProvider(entries)

	t.Run("should serve all entries", func(t *testing.T) {
		all, err := p.GetAllEntries(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("should filter by source case-insensitively", func(t *testing.T) {
		ofac, err := p.GetEntriesBySource(ctx, "OFAC")
		require.NoError(t, err)
		require.Len(t, ofac, 2)
		assert.Equal(t, "w-1", ofac[0].ID)
		assert.Equal(t, "w-3", ofac[1].ID)
	})

	t.Run("should return empty for unknown sources", func(t *testing.T) {
		none, err := p.GetEntriesBySource(ctx, "EU")
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestFileProvider(t *testing.T) {
	t.Run("should load a yaml snapshot", func(t *testing.T) {
		doc := `
entries:
  - id: w-1
    name: Ivan Petrov
    aliases: [Vanya Petrov]
    date_of_birth: 1975-03-02T00:00:00Z
    nationality: Russia
    list_source: OFAC
    entry_type: INDIVIDUAL
`
		path := filepath.Join(t.TempDir(), "watchlist.yaml")
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		p, err := NewFileProvider(path)
		require.NoError(t, err)

		all, err := p.GetAllEntries(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Ivan Petrov", all[0].Name)
		assert.Equal(t, []string{"Vanya Petrov"}, all[0].Aliases)
		require.NotNil(t, all[0].DateOfBirth)
		assert.Equal(t, 1975, all[0].DateOfBirth.Year())
	})

	t.Run("should report a missing file", func(t *testing.T) {
		_, err := NewFileProvider("/nonexistent/watchlist.yaml")
		assert.Error(t, err)
	})

	t.Run("should report malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "watchlist.yaml")
		require.NoError(t, os.WriteFile(path, []byte("entries: ["), 0o600))
		_, err := NewFileProvider(path)
		assert.Error(t, err)
	})
}
