package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symm3try/assembly-planner/internal/assembly"
)

// Scenario 4: parallel fan-out. Two agents can realize S1 and S2 in one
// parallel step at the same total cost as two sequential single-agent
// steps; either is an optimal plan, so the test only pins down the total
// cost, not which branch the search happened to explore.
func TestExpanderParallelFanOutReachesTheSameOptimalCost(t *testing.T) {
	f := assembly.NewFactory()
	for _, s := range []string{"S0", "S1", "S2"} {
		require.NoError(t, f.InsertOr(s))
	}
	for _, a := range []string{"A0", "A11", "A21"} {
		require.NoError(t, f.InsertAnd(a))
	}
	require.NoError(t, f.InsertEdge("S0", "A0"))
	require.NoError(t, f.InsertEdge("A0", "S1"))
	require.NoError(t, f.InsertEdge("A0", "S2"))
	require.NoError(t, f.InsertEdge("S1", "A11"))
	require.NoError(t, f.InsertEdge("S2", "A21"))
	require.NoError(t, f.SetCost("A0", "a", 0))
	require.NoError(t, f.SetCost("A0", "b", 0))
	require.NoError(t, f.SetCost("A11", "a", 1))
	require.NoError(t, f.SetCost("A11", "b", 1))
	require.NoError(t, f.SetCost("A21", "a", 1))
	require.NoError(t, f.SetCost("A21", "b", 1))
	for _, s := range []string{"S0", "S1", "S2"} {
		require.NoError(t, f.SetReachability(s, "a", true, nil))
		require.NoError(t, f.SetReachability(s, "b", true, nil))
	}
	require.NoError(t, f.SetRoot("S0"))

	cfg := &assembly.Configuration{Agents: []assembly.Agent{{Name: "a"}, {Name: "b"}}}
	exp := NewExpander(f.Graph(), cfg)
	as := NewAStar(f.Graph(), exp)
	sg := NewSearchGraph()
	root := newRoot(sg, "S0")

	goal, err := as.Search(testContext(), sg, root, 0)
	require.NoError(t, err)
	data, err := sg.NodeData(goal)
	require.NoError(t, err)
	assert.Equal(t, 2.0, data.GScore)
}

// TestExpanderDoesNotDeadEndOnAMixOfPrimitiveAndOpenSubassemblies covers
// S0 -[A0]-> {S1, S2} where S1 is primitive (no OR-successor of its own)
// and S2 still needs S2 -[A21]-> S3. After realizing A0, the open set is
// {S1, S2}: not a goal, since S2 still has an action to realize, but S1
// contributes no combinatorial choice. The expander must still produce a
// child that targets S2, rather than treating S1's empty candidate list
// as grounds to produce no children at all.
func TestExpanderDoesNotDeadEndOnAMixOfPrimitiveAndOpenSubassemblies(t *testing.T) {
	f := assembly.NewFactory()
	for _, s := range []string{"S0", "S1", "S2", "S3"} {
		require.NoError(t, f.InsertOr(s))
	}
	for _, a := range []string{"A0", "A21"} {
		require.NoError(t, f.InsertAnd(a))
	}
	require.NoError(t, f.InsertEdge("S0", "A0"))
	require.NoError(t, f.InsertEdge("A0", "S1"))
	require.NoError(t, f.InsertEdge("A0", "S2"))
	require.NoError(t, f.InsertEdge("S2", "A21"))
	require.NoError(t, f.InsertEdge("A21", "S3"))
	require.NoError(t, f.SetCost("A0", "a", 1.0))
	require.NoError(t, f.SetCost("A21", "a", 1.0))
	for _, s := range []string{"S0", "S1", "S2", "S3"} {
		require.NoError(t, f.SetReachability(s, "a", true, nil))
	}
	require.NoError(t, f.SetRoot("S0"))

	cfg := oneAgentConfig("a")
	exp := NewExpander(f.Graph(), cfg)
	as := NewAStar(f.Graph(), exp)
	sg := NewSearchGraph()
	root := newRoot(sg, "S0")

	goal, err := as.Search(testContext(), sg, root, 0)
	require.NoError(t, err, "a plan realizing A0 then A21 exists and must be found")
	data, err := sg.NodeData(goal)
	require.NoError(t, err)
	assert.Equal(t, 2.0, data.GScore)
}

func TestExpanderIsIdempotent(t *testing.T) {
	f := assembly.NewFactory()
	require.NoError(t, f.InsertOr("S0"))
	require.NoError(t, f.InsertAnd("A1"))
	require.NoError(t, f.InsertOr("S1"))
	require.NoError(t, f.InsertEdge("S0", "A1"))
	require.NoError(t, f.InsertEdge("A1", "S1"))
	require.NoError(t, f.SetCost("A1", "a", 1.0))
	require.NoError(t, f.SetReachability("S0", "a", true, nil))
	require.NoError(t, f.SetReachability("S1", "a", true, nil))
	require.NoError(t, f.SetRoot("S0"))

	cfg := oneAgentConfig("a")
	exp := NewExpander(f.Graph(), cfg)
	sg := NewSearchGraph()
	root := newRoot(sg, "S0")

	require.NoError(t, exp.Expand(testContext(), sg, root))
	firstCount := sg.NumberOfEdges()
	require.NoError(t, exp.Expand(testContext(), sg, root))
	assert.Equal(t, firstCount, sg.NumberOfEdges(), "expanding an already-expanded node must be a no-op")
}
