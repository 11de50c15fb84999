// Package graphcore is the generic storage layer shared by the assembly
// graph and the search graph. It owns nodes and edges in two flat arenas
// addressed by stable handles, so neither graph aliases the other and
// neither a node nor an edge ever holds a pointer back into the graph.
package graphcore
