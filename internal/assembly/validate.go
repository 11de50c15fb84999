package assembly

import "fmt"

// ValidationError reports a single violation of the assembly graph's
// structural or coverage invariants.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "assembly: validation failed: " + e.Reason
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Validate enforces the invariants a complete assembly graph must satisfy
// before planning can run: a designated root, a strictly bipartite
// AND/OR edge structure, and complete reachability/cost coverage for
// every agent named in cfg.
func Validate(g *Graph, cfg *Configuration) error {
	if _, ok := g.Root(); !ok {
		return validationErrorf("no root subassembly designated")
	}

	if len(cfg.Agents) == 0 {
		return validationErrorf("configuration declares no agents")
	}
	agentNames := cfg.AgentNames()

	for _, id := range g.NodeIDs() {
		data, err := g.NodeData(id)
		if err != nil {
			return validationErrorf("internal: %v", err)
		}

		switch v := data.(type) {
		case SubassemblyData:
			if err := checkBipartite(g, id, Subassembly); err != nil {
				return err
			}
			for _, agent := range agentNames {
				reach, ok := v.Reachability[agent]
				if !ok {
					return validationErrorf("subassembly %q has no reachability entry for agent %q", id, agent)
				}
				if !reach.Reachable && reach.Helper == nil {
					return validationErrorf("subassembly %q is unreachable for agent %q but declares no interaction", id, agent)
				}
				if reach.Helper != nil {
					for _, inner := range agentNames {
						if _, ok := reach.Helper.Costs[inner]; !ok {
							return validationErrorf("interaction %q (for subassembly %q, agent %q) has no cost entry for agent %q", reach.Helper.Name, id, agent, inner)
						}
					}
				}
			}
		case ActionData:
			if err := checkBipartite(g, id, Action); err != nil {
				return err
			}
			for _, agent := range agentNames {
				if _, ok := v.Costs[agent]; !ok {
					return validationErrorf("action %q has no cost entry for agent %q", id, agent)
				}
			}
		default:
			return validationErrorf("node %q has unexpected kind %v", id, data.Kind())
		}
	}

	return nil
}

// checkBipartite verifies that every edge touching id connects an OR node
// to an AND node, in either direction.
func checkBipartite(g *Graph, id string, kind Kind) error {
	for _, succ := range g.SuccessorNodes(id) {
		if err := checkOpposite(g, id, kind, succ); err != nil {
			return err
		}
	}
	for _, pred := range g.PredecessorNodes(id) {
		if err := checkOpposite(g, pred, kindOf(g, pred), id); err != nil {
			return err
		}
	}
	return nil
}

func checkOpposite(g *Graph, from string, fromKind Kind, to string) error {
	toKind := kindOf(g, to)
	isOR := func(k Kind) bool { return k == Subassembly }
	isAND := func(k Kind) bool { return k == Action || k == Interaction }

	if isOR(fromKind) && isOR(toKind) {
		return validationErrorf("not an AND/OR graph (OR-OR edge detected): %q -> %q", from, to)
	}
	if isAND(fromKind) && isAND(toKind) {
		return validationErrorf("not an AND/OR graph (AND-AND edge detected): %q -> %q", from, to)
	}
	return nil
}

func kindOf(g *Graph, id string) Kind {
	data, err := g.NodeData(id)
	if err != nil {
		return Interassembly
	}
	return data.Kind()
}
