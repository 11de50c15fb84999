package assembly

import "github.com/symm3try/assembly-planner/internal/graphcore"

// Kind tags the variant a NodeData value carries. Subassemblies are OR
// nodes; actions and interactions are AND nodes. Interassembly is part of
// the enumeration the writer reserves for future visualization use but is
// never constructed by the planner itself.
type Kind int

const (
	Subassembly Kind = iota
	Action
	Interaction
	Interassembly
)

func (k Kind) String() string {
	switch k {
	case Subassembly:
		return "SUBASSEMBLY"
	case Action:
		return "ACTION"
	case Interaction:
		return "INTERACTION"
	case Interassembly:
		return "INTERASSEMBLY"
	default:
		return "UNKNOWN"
	}
}

// NodeData is the payload carried by every node in the assembly graph.
// It is a closed sum type: SubassemblyData and ActionData are its only
// implementations, so fields specific to one kind (ActionData.Costs,
// ActionData.AssignedAgent) are never addressable on the other.
type NodeData interface {
	Kind() Kind
	NodeName() string
}

// Reach describes a single agent's ability to act on a subassembly
// directly. When Reachable is false, Helper names the interaction action
// that must be performed (by some agent) before the primary agent's
// action can proceed.
type Reach struct {
	Reachable bool
	Helper    *ActionData
}

// SubassemblyData is the payload of an OR node: a (sub-)product state
// realized by performing any one of its successor actions.
type SubassemblyData struct {
	Name         string
	Reachability map[string]Reach // agent name -> reach
}

func (s SubassemblyData) Kind() Kind      { return Subassembly }
func (s SubassemblyData) NodeName() string { return s.Name }

// ActionData is the payload of an AND node: an operation executable by one
// agent at a time, at a per-agent cost, that is only complete once every
// successor subassembly is further realized.
//
// IsInteraction distinguishes an auxiliary helper action (charged when the
// primary agent cannot reach a subassembly) from an ordinary action; both
// share the same cost-map shape. AssignedAgent is empty on every node in
// the input assembly graph and is only populated when an ActionData is
// copied into an output plan graph after search.
type ActionData struct {
	Name          string
	IsInteraction bool
	Costs         map[string]float64 // agent name -> cost, may be +Inf
	AssignedAgent string
}

func (a ActionData) Kind() Kind {
	if a.IsInteraction {
		return Interaction
	}
	return Action
}

func (a ActionData) NodeName() string { return a.Name }

// EdgeData is the payload of an assembly-graph edge. The edge carries no
// attributes of its own; direction and endpoint kind are all that matter.
type EdgeData struct{}

// Graph is the bipartite AND/OR multigraph, keyed by node name.
type Graph = graphcore.Graph[string, NodeData, EdgeData]

// Agent is an executor capable of performing actions at specified costs.
// Host and Port are carried for completeness with the input schema; the
// planner itself never dials out to an agent.
type Agent struct {
	Name string
	Host string
	Port string
}

// Configuration is the read-only, external input consumed by the planner
// alongside the assembly graph: the ordered set of known agents. Order is
// the order agents were declared in the input document, and is significant
// because the combinator iterates agents in this order (§4.3).
type Configuration struct {
	Agents []Agent
}

// AgentNames returns the configured agent names in declaration order.
func (c *Configuration) AgentNames() []string {
	names := make([]string, len(c.Agents))
	for i, a := range c.Agents {
		names[i] = a.Name
	}
	return names
}
