// Package combinator enumerates the legal agent-to-action assignment
// vectors for a set of open subassemblies: the Cartesian product of each
// non-primitive subassembly's candidate actions, crossed with every
// k-subset of agents (k from 1 up to min(targetable subassemblies,
// agents)), crossed with every ordered choice of k of the action tuple's
// positions for that subset's agents. A subassembly with no candidate
// action of its own is primitive and takes no part in the product.
//
// Every enumeration here is a pure function over fresh slices; nothing is
// retained between calls, so a single Combinator value is safe to reuse
// across every node expansion in a search.
package combinator
