package orderedmap_test

import (
	"testing"

	"github.com/lestrrat-go/xmlom/internal/orderedmap"
	"github.com/stretchr/testify/require"
)

func keys(m *orderedmap.Map[string, int]) []string {
	var list []string
	for k := range m.Range() {
		list = append(list, k)
	}
	return list
}

func TestMap(t *testing.T) {
	t.Run("Set keeps insertion order", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		require.NoError(t, m.Set("b", 1))
		require.NoError(t, m.Set("a", 2))
		require.NoError(t, m.Set("c", 3))
		require.Equal(t, []string{"b", "a", "c"}, keys(m))
		require.Equal(t, 3, m.Len())
	})
	t.Run("Set rejects duplicates", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		require.NoError(t, m.Set("a", 1))
		require.ErrorIs(t, m.Set("a", 2), orderedmap.ErrDuplicateEntry)
		v, ok := m.Get("a")
		require.True(t, ok)
		require.Equal(t, 1, v)
	})
	t.Run("Delete", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		_ = m.Set("a", 1)
		_ = m.Set("b", 2)
		require.True(t, m.Delete("a"))
		require.False(t, m.Delete("a"))
		require.False(t, m.Has("a"))
		require.Equal(t, []string{"b"}, keys(m))
	})
	t.Run("Rename keeps position", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		_ = m.Set("a", 1)
		_ = m.Set("b", 2)
		_ = m.Set("c", 3)
		require.NoError(t, m.Rename("b", "x"))
		require.Equal(t, []string{"a", "x", "c"}, keys(m))
		v, ok := m.Get("x")
		require.True(t, ok)
		require.Equal(t, 2, v)

		require.ErrorIs(t, m.Rename("nope", "y"), orderedmap.ErrEntryNotFound)
		require.ErrorIs(t, m.Rename("a", "c"), orderedmap.ErrDuplicateEntry)
	})
}
