package search

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/symm3try/assembly-planner/internal/assembly"
	"github.com/symm3try/assembly-planner/internal/combinator"
	"github.com/symm3try/assembly-planner/internal/ctxlog"
)

// Expander lazily grows the search graph by turning a single search node
// into its legal AND-children, consulting the assembly graph and the
// combinator. It holds no per-call state, so one Expander is reused for
// every node expanded during a search.
type Expander struct {
	assembly    *assembly.Graph
	cfg         *assembly.Configuration
	combinator  *combinator.Combinator
}

// NewExpander returns an Expander bound to a fixed assembly graph and
// configuration for the duration of one planning invocation.
func NewExpander(g *assembly.Graph, cfg *assembly.Configuration) *Expander {
	return &Expander{
		assembly:   g,
		cfg:        cfg,
		combinator: combinator.New(),
	}
}

// Expand materializes v's children in sg, skipping the work if v already
// has at least one successor edge (idempotent per search node).
func (e *Expander) Expand(ctx context.Context, sg *SearchGraph, v int) error {
	if sg.HasSuccessor(v) {
		return nil
	}

	logger := ctxlog.FromContext(ctx)

	data, err := sg.NodeData(v)
	if err != nil {
		return fmt.Errorf("search: expand %d: %w", v, err)
	}

	open := openSubassemblies(data)
	steps := e.combinator.Generate(e.assembly, e.cfg.AgentNames(), open)

	for _, step := range steps {
		cost, err := e.stepCost(step)
		if err != nil {
			return fmt.Errorf("search: expand %d: %w", v, err)
		}

		child := newNodeData()
		for name, id := range data.Subassemblies {
			child.Subassemblies[name] = id
		}
		for name, id := range data.Actions {
			child.Actions[name] = id
		}
		for i, asg := range step.Assignments {
			delete(child.Subassemblies, step.Targets[i])
			child.Actions[asg.Action] = asg.ActionNodeID
			for _, succ := range e.assembly.SuccessorNodes(asg.Action) {
				child.Subassemblies[succ] = succ
			}
		}
		child.GScore = data.GScore + cost

		childID := sg.NewNode(child)
		if _, err := sg.InsertEdge(EdgeData{Cost: cost, PlannedAssignments: step.Assignments}, v, childID); err != nil {
			return fmt.Errorf("search: expand %d: %w", v, err)
		}
	}

	data.MinimumCostAction = e.minimumCostAction(open)
	logger.Debug("expanded search node", "node", v, "children", len(steps), "open", len(open), "min_cost_action", data.MinimumCostAction)
	return nil
}

// stepCost sums the per-agent action cost of every assignment in step,
// adding the interaction cost when the assigned agent cannot directly
// reach the targeted subassembly. The interaction cost is charged to the
// primary (assigned) agent, per the source's single-cell accumulation.
func (e *Expander) stepCost(step combinator.Step) (float64, error) {
	total := 0.0
	for i, asg := range step.Assignments {
		actionData, err := e.assembly.NodeData(asg.Action)
		if err != nil {
			return 0, fmt.Errorf("unknown action %q: %w", asg.Action, err)
		}
		action, ok := actionData.(assembly.ActionData)
		if !ok {
			return 0, fmt.Errorf("node %q is not an action", asg.Action)
		}
		cost, ok := action.Costs[asg.Agent]
		if !ok {
			return 0, fmt.Errorf("action %q has no cost for agent %q", asg.Action, asg.Agent)
		}
		total += cost

		target := step.Targets[i]
		subData, err := e.assembly.NodeData(target)
		if err != nil {
			return 0, fmt.Errorf("unknown subassembly %q: %w", target, err)
		}
		sub, ok := subData.(assembly.SubassemblyData)
		if !ok {
			return 0, fmt.Errorf("node %q is not a subassembly", target)
		}
		reach, ok := sub.Reachability[asg.Agent]
		if ok && !reach.Reachable && reach.Helper != nil {
			if helperCost, ok := reach.Helper.Costs[asg.Agent]; ok {
				total += helperCost
			}
		}
	}
	return total, nil
}

// minimumCostAction is the smallest finite per-agent cost among every
// action reachable (one hop) from any subassembly in open.
func (e *Expander) minimumCostAction(open []string) float64 {
	min := math.Inf(1)
	for _, s := range open {
		for _, actionID := range e.assembly.SuccessorNodes(s) {
			data, err := e.assembly.NodeData(actionID)
			if err != nil {
				continue
			}
			action, ok := data.(assembly.ActionData)
			if !ok {
				continue
			}
			for _, cost := range action.Costs {
				if !math.IsInf(cost, 1) && cost < min {
					min = cost
				}
			}
		}
	}
	return min
}

// openSubassemblies returns data's open subassembly names in a
// deterministic (sorted) order. Go map iteration order is randomized, so
// sorting here is what guarantees the combinator's enumeration order is
// reproducible across runs -- the source's unordered_map gave no such
// guarantee to begin with.
func openSubassemblies(data *NodeData) []string {
	names := make([]string, 0, len(data.Subassemblies))
	for name := range data.Subassemblies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
