package combinator

import "github.com/symm3try/assembly-planner/internal/assembly"

// Combinator enumerates legal agent-to-action assignment vectors. It is
// stateless; every method returns freshly allocated slices and retains
// nothing between calls, so a single instance may be shared across every
// node expansion in a search.
type Combinator struct{}

// New returns a Combinator.
func New() *Combinator {
	return &Combinator{}
}

// Generate produces every legal Step for extending a plan that has the
// given open subassemblies, using the given agents (in declaration
// order). See the package doc for the enumeration this performs.
func (c *Combinator) Generate(g *assembly.Graph, agents []string, subassemblies []string) []Step {
	targetable := targetableSubassemblies(g, subassemblies)
	n := len(targetable)
	if n == 0 {
		// Every open subassembly is already primitive (no OR-successor of
		// its own); there is no combinatorial choice left to enumerate, but
		// the caller still needs a step to advance past this node.
		return []Step{{}}
	}

	actionCombos := actionCombinations(g, targetable)
	if len(actionCombos) == 0 {
		return nil
	}

	l := n
	if len(agents) < l {
		l = len(agents)
	}

	var steps []Step
	for k := 1; k <= l; k++ {
		for _, agentSet := range agentSubsets(agents, k) {
			for _, actions := range actionCombos {
				steps = append(steps, assignAgentsToActions(agentSet, actions, targetable)...)
			}
		}
	}
	return steps
}

// targetableSubassemblies returns the subset of subassemblies that still
// have at least one OR-successor action. A primitive subassembly (no
// successor) contributes no combinatorial choice and must not zero out the
// Cartesian product for the rest of the open set; it stays open for the
// goal test but is excluded here.
func targetableSubassemblies(g *assembly.Graph, subassemblies []string) []string {
	targetable := make([]string, 0, len(subassemblies))
	for _, s := range subassemblies {
		if len(g.SuccessorNodes(s)) > 0 {
			targetable = append(targetable, s)
		}
	}
	return targetable
}

// actionCombinations enumerates the Cartesian product, in lexicographic
// order over indices, of each open subassembly's candidate actions (its
// OR-successors in insertion order). It is a mixed-radix odometer: one
// digit per subassembly, each digit ranging over that subassembly's
// successor count.
func actionCombinations(g *assembly.Graph, subassemblies []string) [][]string {
	n := len(subassemblies)
	candidates := make([][]string, n)
	for i, s := range subassemblies {
		candidates[i] = g.SuccessorNodes(s)
		if len(candidates[i]) == 0 {
			return nil
		}
	}

	indices := make([]int, n)
	var combos [][]string
	for {
		combo := make([]string, n)
		for i := range combo {
			combo[i] = candidates[i][indices[i]]
		}
		combos = append(combos, combo)

		next := n - 1
		for next >= 0 && indices[next]+1 >= len(candidates[next]) {
			next--
		}
		if next < 0 {
			break
		}
		indices[next]++
		for i := next + 1; i < n; i++ {
			indices[i] = 0
		}
	}
	return combos
}

// agentSubsets enumerates every k-subset of agents, in reverse-lex order
// over a boolean selector vector (prevPermutation starting from the
// subset with every selected agent first).
func agentSubsets(agents []string, k int) [][]string {
	n := len(agents)
	selector := make([]bool, n)
	for i := 0; i < k; i++ {
		selector[i] = true
	}

	var subsets [][]string
	for {
		subset := make([]string, 0, k)
		for i, selected := range selector {
			if selected {
				subset = append(subset, agents[i])
			}
		}
		subsets = append(subsets, subset)
		if !prevPermutation(selector) {
			break
		}
	}
	return subsets
}

// assignAgentsToActions enumerates every way of permuting the k agents in
// agentSet onto the first k positions of an index vector over actions,
// using nextPermutation after reversing the tail [k:n) on each iteration,
// exactly as the source does. subassemblies[j] is the open subassembly
// that actions[j] was chosen to realize, carried through to Step.Targets.
func assignAgentsToActions(agentSet, actions, subassemblies []string) []Step {
	n := len(actions)
	k := len(agentSet)

	d := make([]int, n)
	for i := range d {
		d[i] = i
	}

	var steps []Step
	for {
		step := Step{
			Assignments: make([]Assignment, k),
			Targets:     make([]string, k),
		}
		for i := 0; i < k; i++ {
			action := actions[d[i]]
			step.Assignments[i] = Assignment{
				Agent:        agentSet[i],
				Action:       action,
				ActionNodeID: action,
			}
			step.Targets[i] = subassemblies[d[i]]
		}
		steps = append(steps, step)

		reverseInts(d, k, n)
		if !nextPermutation(d) {
			break
		}
	}
	return steps
}
