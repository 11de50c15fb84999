// Package search implements the lazily-expanded search graph and the
// best-first (A*-style) traversal over it. A SearchNode is a planning
// state: the open subassembly frontier plus bookkeeping scores. Expander
// grows a search node's children on demand by consulting the combinator;
// AStar repeatedly pops the minimum-f-score open node and expands it until
// a goal is popped or the open set is exhausted.
package search
