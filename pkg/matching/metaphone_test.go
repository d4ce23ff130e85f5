package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetaphone(t *testing.T) {
	m := NewMetaphone()

	t.Run("should encode spelling variants identically", func(t *testing.T) {
		p1, _ := m.Encode("Muhammad")
		p2, _ := m.Encode("Mohammed")
		assert.Equal(t, "MMT", p1)
		assert.Equal(t, p1, p2)
		assert.True(t, m.Matches("Muhammad", "Mohammed"))
		assert.Equal(t, 1.0, m.Similarity("Muhammad", "Mohammed"))
	})

	t.Run("should match smith and smyth", func(t *testing.T) {
		assert.True(t, m.Matches("Smith", "Smyth"))
	})

	t.Run("should use the alternate for divergent pronunciations", func(t *testing.T) {
		// soft G primary J, hard G alternate K
		p, a := m.Encode("Geoff")
		assert.Equal(t, "JF", p)
		assert.Equal(t, "KF", a)
	})

	t.Run("should not match unrelated names", func(t *testing.T) {
		assert.False(t, m.Matches("John", "Mary"))
		assert.Equal(t, 0.0, m.Similarity("John", "Mary"))
	})

	t.Run("should match on a shared token code", func(t *testing.T) {
		assert.True(t, m.Matches("Anna Smith", "Maria Smith"))
		sim := m.Similarity("Anna Smith", "Maria Smith")
		assert.Greater(t, sim, 0.0)
		assert.Less(t, sim, 1.0)
	})

	t.Run("should handle empty input", func(t *testing.T) {
		p, a := m.Encode("")
		assert.Equal(t, "", p)
		assert.Equal(t, "", a)
		assert.False(t, m.Matches("", "Smith"))
	})
}
