package xmlio

import (
	"fmt"

	"github.com/symm3try/assembly-planner/internal/assembly"
	"github.com/symm3try/assembly-planner/internal/planner"
)

// Annotate copies g and stamps every action node that result assigned to
// an agent with that agent's name, producing the "solution graph" shape
// Write expects for a plan report. The input graph is left untouched.
func Annotate(g *assembly.Graph, result *planner.Result) (*assembly.Graph, error) {
	f := assembly.NewFactory()
	for _, id := range g.NodeIDs() {
		data, err := g.NodeData(id)
		if err != nil {
			return nil, fmt.Errorf("xmlio: internal: %w", err)
		}
		switch v := data.(type) {
		case assembly.SubassemblyData:
			if err := f.InsertOr(v.Name); err != nil {
				return nil, err
			}
			for agent, reach := range v.Reachability {
				if err := f.SetReachability(v.Name, agent, reach.Reachable, reach.Helper); err != nil {
					return nil, err
				}
			}
		case assembly.ActionData:
			if err := f.InsertAnd(v.Name); err != nil {
				return nil, err
			}
			for agent, cost := range v.Costs {
				if err := f.SetCost(v.Name, agent, cost); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, id := range g.NodeIDs() {
		for _, succ := range g.SuccessorNodes(id) {
			if err := f.InsertEdge(id, succ); err != nil {
				return nil, err
			}
		}
	}
	if root, ok := g.Root(); ok {
		if err := f.SetRoot(root); err != nil {
			return nil, err
		}
	}

	out := f.Graph()
	for _, step := range result.Steps {
		for _, a := range step.Assignments {
			data, err := out.NodeData(a.ActionNodeID)
			if err != nil {
				return nil, fmt.Errorf("xmlio: annotate: %w", err)
			}
			action, ok := data.(assembly.ActionData)
			if !ok {
				return nil, fmt.Errorf("xmlio: annotate: %q is not an action node", a.ActionNodeID)
			}
			action.AssignedAgent = a.Agent
			if err := out.SetNodeData(a.ActionNodeID, action); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
