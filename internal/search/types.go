package search

import (
	"math"

	"github.com/symm3try/assembly-planner/internal/combinator"
	"github.com/symm3try/assembly-planner/internal/graphcore"
)

// NodeData is a planning state: the open subassembly frontier, the
// actions committed along this branch, and the A* bookkeeping scores.
// Subassemblies and Actions map names to their assembly-graph ids; in
// this implementation a name is its own id, but the map shape is kept to
// mirror the source's node-index bookkeeping and to stay correct if that
// identity ever stops holding.
type NodeData struct {
	Marked bool

	GScore float64
	HScore float64
	FScore float64

	// MinimumCostAction is the smallest finite per-agent cost among every
	// action reachable from this node's open subassemblies. It feeds the
	// heuristic and defaults to +Inf, matching the source's MAXFLOAT
	// default, until the node is expanded.
	MinimumCostAction float64

	Subassemblies map[string]string
	Actions       map[string]string
}

func newNodeData() *NodeData {
	return &NodeData{
		MinimumCostAction: math.Inf(1),
		Subassemblies:     make(map[string]string),
		Actions:           make(map[string]string),
	}
}

// NewRootNodeData returns the initial search-node payload: an open
// frontier containing just the assembly graph's root subassembly, with
// g_score zero.
func NewRootNodeData(rootSubassembly string) *NodeData {
	data := newNodeData()
	data.Subassemblies[rootSubassembly] = rootSubassembly
	return data
}

// EdgeData is the payload of a search-graph edge: the cost of the step it
// represents and the concrete assignments that realize it.
type EdgeData struct {
	Cost               float64
	PlannedAssignments []combinator.Assignment
}

// Graph is the search graph: nodes are unnamed planning states addressed
// by auto-incrementing handles.
type Graph = graphcore.Graph[int, *NodeData, EdgeData]

// SearchGraph wraps Graph with the handle counter needed to mint fresh
// node ids, since search-graph nodes (unlike assembly-graph nodes) have no
// natural name of their own.
type SearchGraph struct {
	*Graph
	nextID int
}

// NewSearchGraph returns an empty search graph.
func NewSearchGraph() *SearchGraph {
	return &SearchGraph{Graph: graphcore.New[int, *NodeData, EdgeData]()}
}

// NewNode inserts data under a freshly minted handle and returns it.
func (sg *SearchGraph) NewNode(data *NodeData) int {
	id := sg.nextID
	sg.nextID++
	// A fresh counter value can never collide with a prior handle.
	_ = sg.Graph.InsertNode(id, data)
	return id
}
