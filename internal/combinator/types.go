package combinator

// Assignment is a single agent-to-action pairing within one plan step.
type Assignment struct {
	Agent        string
	Action       string
	ActionNodeID string
}

// Step is one legal extension of a search node: a vector of concurrent
// Assignments, one per agent in the chosen agent subset, together with the
// open subassembly each assignment resolves. Targets[i] names the open
// subassembly that Assignments[i] was chosen to realize; it has the same
// length as Assignments and is not part of the public Assignment tuple
// because it is internal bookkeeping the expander needs to compute costs
// and successor frontiers, not plan output.
type Step struct {
	Assignments []Assignment
	Targets     []string
}
