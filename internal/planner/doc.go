// Package planner is the glue: it seeds a search graph from an assembly
// graph's root subassembly, runs A* search to a goal, and reconstructs
// the resulting Plan by walking predecessor edges back to the root.
package planner
