package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaroWinkler(t *testing.T) {
	j := NewJaroWinkler(DefaultJaroWinklerThreshold)

	t.Run("should return 1.0 for identical names", func(t *testing.T) {
		assert.Equal(t, 1.0, j.Similarity("John Smith", "John Smith"))
		assert.Equal(t, 1.0, j.Similarity("john smith", "JOHN SMITH"))
	})

	t.Run("should score close names above the threshold", func(t *testing.T) {
		assert.GreaterOrEqual(t, j.Similarity("Martha", "Marhta"), 0.95)
		assert.True(t, j.Matches("Jonathan", "Jonathon"))
	})

	t.Run("should score unrelated names low", func(t *testing.T) {
		assert.Less(t, j.Similarity("John", "Mary"), 0.5)
		assert.False(t, j.Matches("John", "Mary"))
	})

	t.Run("should return 0 for empty input", func(t *testing.T) {
		assert.Equal(t, 0.0, j.Similarity("", "John"))
		assert.Equal(t, 0.0, j.Similarity("John", ""))
	})

	t.Run("should boost shared prefixes", func(t *testing.T) {
		// same single edit, but only one pair shares a prefix
		assert.Greater(t, j.Similarity("ABCDX", "ABCDY"), j.Similarity("XABCD", "YABCD"))
	})
}

func TestJaroWinklerTokenSimilarity(t *testing.T) {
	j := NewJaroWinkler(DefaultJaroWinklerThreshold)

	t.Run("should treat reordered tokens as exact", func(t *testing.T) {
		assert.Equal(t, 1.0, j.TokenSimilarity("John Smith", "Smith John"))
	})

	t.Run("should penalize extra tokens", func(t *testing.T) {
		sim := j.TokenSimilarity("John Smith", "John Michael Smith")
		assert.Greater(t, sim, 0.5)
		assert.Less(t, sim, 1.0)
	})

	t.Run("should score near-miss tokens high", func(t *testing.T) {
		assert.Greater(t, j.TokenSimilarity("Jon Smith", "John Smith"), 0.9)
	})

	t.Run("should return 0 when a side has no tokens", func(t *testing.T) {
		assert.Equal(t, 0.0, j.TokenSimilarity("", "John"))
	})
}
