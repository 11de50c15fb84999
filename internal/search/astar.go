package search

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/symm3try/assembly-planner/internal/assembly"
	"github.com/symm3try/assembly-planner/internal/ctxlog"
)

// ErrNoPlan is returned by AStar.Search when the open set is exhausted
// without popping a goal node.
var ErrNoPlan = errors.New("search: no plan found")

// PlanFailure wraps ErrNoPlan with the last node popped before the open
// set emptied, for diagnostics. Unwrap returns ErrNoPlan; LastNode (valid
// when HasLast is true) recovers the source's literal "return the last
// popped node" behavior.
type PlanFailure struct {
	LastNode int
	HasLast  bool
}

func (e *PlanFailure) Error() string { return ErrNoPlan.Error() }
func (e *PlanFailure) Unwrap() error { return ErrNoPlan }

// ErrNodeBudgetExceeded is returned by AStar.Search when a positive
// nodeBudget is exhausted before a goal is reached. It is distinct from
// ErrNoPlan: a budget trip means the search gave up early, not that no
// plan exists.
var ErrNodeBudgetExceeded = errors.New("search: node budget exceeded")

// BudgetExceededError reports the last node popped and how many nodes had
// been visited when the budget tripped.
type BudgetExceededError struct {
	LastNode      int
	NodesExpanded int
	Budget        int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("%s: expanded %d nodes against a budget of %d", ErrNodeBudgetExceeded, e.NodesExpanded, e.Budget)
}
func (e *BudgetExceededError) Unwrap() error { return ErrNodeBudgetExceeded }

// AStar runs the best-first search over a lazily-expanded search graph
// rooted at an assembly graph. There is no closed set: every child the
// expander produces is a freshly allocated search node, so no state is
// ever revisited.
type AStar struct {
	assembly *assembly.Graph
	expander *Expander
}

// NewAStar returns an AStar bound to the given assembly graph, expanding
// nodes with expander.
func NewAStar(assemblyGraph *assembly.Graph, expander *Expander) *AStar {
	return &AStar{assembly: assemblyGraph, expander: expander}
}

// Search expands root (the search graph's single initial node, whose
// Subassemblies should contain exactly the assembly graph's root) and
// repeatedly pops the minimum-f-score open node until one with no open
// subassembly left to realize is popped, or the open set empties first.
// nodeBudget caps how many nodes may be popped off the open set before
// Search gives up and returns a *BudgetExceededError; zero means
// unbounded.
func (a *AStar) Search(ctx context.Context, sg *SearchGraph, root int, nodeBudget int) (int, error) {
	logger := ctxlog.FromContext(ctx)

	if err := a.expander.Expand(ctx, sg, root); err != nil {
		return 0, err
	}
	rootData, err := sg.NodeData(root)
	if err != nil {
		return 0, err
	}
	rootData.HScore = a.heuristic(rootData)
	rootData.FScore = rootData.GScore + rootData.HScore

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, openEntry{node: root, fScore: rootData.FScore, seq: 0})

	seq := 1
	current := -1
	visited := 0
	for open.Len() > 0 {
		entry := heap.Pop(open).(openEntry)
		current = entry.node
		visited++

		if nodeBudget > 0 && visited > nodeBudget {
			logger.Warn("search aborted: node budget exceeded", "budget", nodeBudget, "node", current)
			return current, &BudgetExceededError{LastNode: current, NodesExpanded: visited - 1, Budget: nodeBudget}
		}

		if a.isGoal(sg, current) {
			logger.Info("plan found", "node", current)
			return current, nil
		}

		data, err := sg.NodeData(current)
		if err != nil {
			return 0, err
		}
		data.Marked = true

		for _, edgeHandle := range sg.SuccessorEdges(current) {
			_, childID := sg.EdgeEndpoints(edgeHandle)
			edge := sg.EdgeData(edgeHandle)

			if err := a.expander.Expand(ctx, sg, childID); err != nil {
				return 0, err
			}
			childData, err := sg.NodeData(childID)
			if err != nil {
				return 0, err
			}
			childData.GScore = data.GScore + edge.Cost
			childData.HScore = a.heuristic(childData)
			childData.FScore = childData.GScore + childData.HScore

			heap.Push(open, openEntry{node: childID, fScore: childData.FScore, seq: seq})
			seq++
		}
	}

	logger.Warn("search exhausted without reaching a goal", "last_node", current)
	return current, &PlanFailure{LastNode: current, HasLast: current >= 0}
}

// isGoal reports whether every subassembly still open at node has no
// OR-successor (candidate action) in the assembly graph, i.e. is a
// primitive part.
func (a *AStar) isGoal(sg *SearchGraph, node int) bool {
	data, err := sg.NodeData(node)
	if err != nil {
		return false
	}
	for _, id := range data.Subassemblies {
		if a.assembly.HasSuccessor(id) {
			return false
		}
	}
	return true
}

// heuristic is the source's h_score: log2(longest open subassembly name)
// times the node's minimum reachable action cost. It is not admissible.
// When no finite-cost action is reachable from the open subassemblies
// (MinimumCostAction is +Inf), h is 0, so such a node is ordered by its
// g_score alone.
func (a *AStar) heuristic(data *NodeData) float64 {
	if math.IsInf(data.MinimumCostAction, 1) {
		return 0
	}
	maxLen := 0
	for id := range data.Subassemblies {
		nodeData, err := a.assembly.NodeData(id)
		if err != nil {
			continue
		}
		if n := len(nodeData.NodeName()); n > maxLen {
			maxLen = n
		}
	}
	return math.Log2(float64(maxLen)) * data.MinimumCostAction
}
