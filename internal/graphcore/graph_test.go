package graphcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	g := New[string, int, string]()
	require.NotNil(t, g)
	assert.Equal(t, 0, g.NumberOfNodes())
	assert.Equal(t, 0, g.NumberOfEdges())
}

func TestInsertNode(t *testing.T) {
	g := New[string, int, string]()

	require.NoError(t, g.InsertNode("a", 1))
	assert.Equal(t, 1, g.NumberOfNodes())

	err := g.InsertNode("a", 2)
	require.ErrorIs(t, err, ErrDuplicateNode)

	data, err := g.NodeData("a")
	require.NoError(t, err)
	assert.Equal(t, 1, data, "duplicate insert must not overwrite the original payload")
}

func TestInsertEdge(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		g := New[string, int, string]()
		require.NoError(t, g.InsertNode("a", 1))
		require.NoError(t, g.InsertNode("b", 2))

		h, err := g.InsertEdge("a->b", "a", "b")
		require.NoError(t, err)
		assert.Equal(t, "a->b", g.EdgeData(h))
		assert.Equal(t, []string{"b"}, g.SuccessorNodes("a"))
		assert.Equal(t, []string{"a"}, g.PredecessorNodes("b"))
	})

	t.Run("missing source", func(t *testing.T) {
		g := New[string, int, string]()
		require.NoError(t, g.InsertNode("b", 2))
		_, err := g.InsertEdge("x", "a", "b")
		require.ErrorIs(t, err, ErrNodeNotFound)
	})

	t.Run("missing destination", func(t *testing.T) {
		g := New[string, int, string]()
		require.NoError(t, g.InsertNode("a", 1))
		_, err := g.InsertEdge("x", "a", "b")
		require.ErrorIs(t, err, ErrNodeNotFound)
	})
}

func TestInsertionOrderPreserved(t *testing.T) {
	g := New[string, int, string]()
	require.NoError(t, g.InsertNode("s", 0))
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.InsertNode(id, 0))
		_, err := g.InsertEdge(id, "s", id)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"c", "a", "b"}, g.SuccessorNodes("s"))
}

func TestEraseEdge(t *testing.T) {
	g := New[string, int, string]()
	require.NoError(t, g.InsertNode("a", 0))
	require.NoError(t, g.InsertNode("b", 0))
	h, err := g.InsertEdge("e", "a", "b")
	require.NoError(t, err)

	assert.True(t, g.EraseEdge("a", "b"))
	assert.False(t, g.EraseEdge("a", "b"), "second erase of the same pair finds nothing")
	assert.Empty(t, g.SuccessorNodes("a"))
	assert.Empty(t, g.PredecessorNodes("b"))
	assert.Equal(t, 0, g.NumberOfEdges())

	// The handle remains valid for data lookup even once erased.
	assert.Equal(t, "e", g.EdgeData(h))
}

func TestEraseNodeDropsIncidentEdges(t *testing.T) {
	g := New[string, int, string]()
	require.NoError(t, g.InsertNode("a", 0))
	require.NoError(t, g.InsertNode("b", 0))
	require.NoError(t, g.InsertNode("c", 0))
	_, err := g.InsertEdge("ab", "a", "b")
	require.NoError(t, err)
	_, err = g.InsertEdge("bc", "b", "c")
	require.NoError(t, err)

	assert.True(t, g.EraseNode("b"))
	assert.False(t, g.HasNode("b"))
	assert.Empty(t, g.SuccessorNodes("a"))
	assert.Empty(t, g.PredecessorNodes("c"))
	assert.Equal(t, 0, g.NumberOfEdges())
}

func TestFindEdge(t *testing.T) {
	g := New[string, int, string]()
	require.NoError(t, g.InsertNode("a", 0))
	require.NoError(t, g.InsertNode("b", 0))

	_, found := g.FindEdge("a", "b")
	assert.False(t, found)

	_, err := g.InsertEdge("x", "a", "b")
	require.NoError(t, err)

	h, found := g.FindEdge("a", "b")
	require.True(t, found)
	assert.Equal(t, "x", g.EdgeData(h))
}

func TestHasSuccessor(t *testing.T) {
	g := New[string, int, string]()
	require.NoError(t, g.InsertNode("a", 0))
	require.NoError(t, g.InsertNode("b", 0))
	assert.False(t, g.HasSuccessor("a"))

	_, err := g.InsertEdge("x", "a", "b")
	require.NoError(t, err)
	assert.True(t, g.HasSuccessor("a"))
	assert.False(t, g.HasSuccessor("b"))
}

func TestRoot(t *testing.T) {
	g := New[string, int, string]()
	_, ok := g.Root()
	assert.False(t, ok)

	err := g.SetRoot("missing")
	require.ErrorIs(t, err, ErrNodeNotFound)

	require.NoError(t, g.InsertNode("s", 0))
	require.NoError(t, g.SetRoot("s"))
	root, ok := g.Root()
	require.True(t, ok)
	assert.Equal(t, "s", root)
}
