package assembly

import (
	"fmt"

	"github.com/symm3try/assembly-planner/internal/graphcore"
)

// Factory builds an assembly Graph from a stream of typed node and edge
// insertions, the way internal/dag's two-pass builder assembles a
// dependency graph from a config model: callers insert every node first,
// then every edge, then call SetRoot and Validate.
type Factory struct {
	graph *Graph
}

// NewFactory returns a Factory wrapping a fresh, empty Graph.
func NewFactory() *Factory {
	return &Factory{graph: graphcore.New[string, NodeData, EdgeData]()}
}

// InsertOr adds a subassembly (OR) node named name. It fails if name
// already names a node of any kind.
func (f *Factory) InsertOr(name string) error {
	return f.graph.InsertNode(name, SubassemblyData{
		Name:         name,
		Reachability: make(map[string]Reach),
	})
}

// InsertAnd adds an action (AND) node named name. It fails if name already
// names a node of any kind.
func (f *Factory) InsertAnd(name string) error {
	return f.graph.InsertNode(name, ActionData{
		Name:  name,
		Costs: make(map[string]float64),
	})
}

// SetReachability records whether agent can directly reach subassembly,
// attaching the interaction helper action when it cannot.
func (f *Factory) SetReachability(subassembly, agent string, reachable bool, helper *ActionData) error {
	data, err := f.graph.NodeData(subassembly)
	if err != nil {
		return fmt.Errorf("assembly: set reachability on %q: %w", subassembly, err)
	}
	sub, ok := data.(SubassemblyData)
	if !ok {
		return fmt.Errorf("assembly: %q is not a subassembly node", subassembly)
	}
	sub.Reachability[agent] = Reach{Reachable: reachable, Helper: helper}
	return f.graph.SetNodeData(subassembly, sub)
}

// SetCost records the cost for agent to perform action.
func (f *Factory) SetCost(action, agent string, cost float64) error {
	data, err := f.graph.NodeData(action)
	if err != nil {
		return fmt.Errorf("assembly: set cost on %q: %w", action, err)
	}
	act, ok := data.(ActionData)
	if !ok {
		return fmt.Errorf("assembly: %q is not an action node", action)
	}
	act.Costs[agent] = cost
	return f.graph.SetNodeData(action, act)
}

// InsertEdge connects from to to. Exactly one of the endpoints must be a
// subassembly and the other an action/interaction; Validate enforces this
// after the whole graph has been built.
func (f *Factory) InsertEdge(from, to string) error {
	_, err := f.graph.InsertEdge(EdgeData{}, from, to)
	return err
}

// SetRoot designates name as the graph's root subassembly.
func (f *Factory) SetRoot(name string) error {
	return f.graph.SetRoot(name)
}

// Graph returns the graph built so far.
func (f *Factory) Graph() *Graph {
	return f.graph
}
