// Package assembly holds the bipartite AND/OR assembly graph: subassembly
// (OR) and action (AND) nodes, built by Factory and checked by Validate.
// The planner treats this graph as read-only once built.
package assembly
