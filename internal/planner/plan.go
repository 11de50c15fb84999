package planner

import (
	"context"
	"fmt"

	"github.com/symm3try/assembly-planner/internal/assembly"
	"github.com/symm3try/assembly-planner/internal/combinator"
	"github.com/symm3try/assembly-planner/internal/ctxlog"
	"github.com/symm3try/assembly-planner/internal/search"
)

// Step is one step of a reconstructed plan: the concurrent assignments
// chosen at that point and the cost charged for them.
type Step struct {
	Assignments []combinator.Assignment
	Cost        float64
}

// Result is the outcome of a successful Plan invocation: the step
// sequence from root to goal, in execution order, and the total cost.
type Result struct {
	Steps     []Step
	TotalCost float64
}

// Plan runs the best-first search over g, starting from its designated
// root subassembly, using cfg's agents. It returns ErrNoPlan (wrapped in
// *search.PlanFailure) if the open set empties before a goal is found, or
// *search.BudgetExceededError if nodeBudget is positive and exhausted
// first. nodeBudget of zero means unbounded.
func Plan(ctx context.Context, g *assembly.Graph, cfg *assembly.Configuration, nodeBudget int) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if err := assembly.Validate(g, cfg); err != nil {
		return nil, err
	}

	rootName, ok := g.Root()
	if !ok {
		return nil, fmt.Errorf("planner: assembly graph has no root")
	}

	logger.Info("planning started", "root", rootName, "agents", len(cfg.Agents))

	expander := search.NewExpander(g, cfg)
	astar := search.NewAStar(g, expander)

	sg := search.NewSearchGraph()
	rootData := search.NewRootNodeData(rootName)
	root := sg.NewNode(rootData)

	goal, err := astar.Search(ctx, sg, root, nodeBudget)
	if err != nil {
		return nil, err
	}

	result, err := reconstruct(sg, root, goal)
	if err != nil {
		return nil, err
	}

	logger.Info("planning finished", "steps", len(result.Steps), "total_cost", result.TotalCost)
	return result, nil
}

// reconstruct walks the unique path from root to goal in the search
// graph (it is a tree, so there is exactly one) and reports it in root-
// to-goal order.
func reconstruct(sg *search.SearchGraph, root, goal int) (*Result, error) {
	path, err := pathTo(sg, root, goal)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, h := range path {
		result.Steps = append(result.Steps, Step{Assignments: h.edge.PlannedAssignments, Cost: h.edge.Cost})
		result.TotalCost += h.edge.Cost
	}
	return result, nil
}

type hop struct {
	edge   search.EdgeData
	target int
}

// pathTo finds the sequence of edges from root to target by a depth-first
// walk, since the search graph is a tree and every node has exactly one
// path back to the root.
func pathTo(sg *search.SearchGraph, root, target int) ([]hop, error) {
	if root == target {
		return nil, nil
	}
	var walk func(node int, trail []hop) []hop
	walk = func(node int, trail []hop) []hop {
		for _, edgeHandle := range sg.SuccessorEdges(node) {
			_, child := sg.EdgeEndpoints(edgeHandle)
			edgeData := sg.EdgeData(edgeHandle)
			next := append(trail, hop{edge: edgeData, target: child})
			if child == target {
				return next
			}
			if found := walk(child, next); found != nil {
				return found
			}
		}
		return nil
	}
	path := walk(root, nil)
	if path == nil {
		return nil, fmt.Errorf("planner: goal node %d is not reachable from root %d", target, root)
	}
	return path, nil
}
