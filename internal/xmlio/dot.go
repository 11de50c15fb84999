package xmlio

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/symm3try/assembly-planner/internal/assembly"
)

// No DOT/graphviz client library exists anywhere in the retrieved
// examples, so the visualization is rendered by hand with text/template,
// the same package the code-generation tooling in the wider corpus uses
// for templated text output.
var dotTemplate = template.Must(template.New("dot").Parse(`digraph assembly {
  rankdir=TB;
  node [shape=box];
{{- range .Nodes}}
  "{{.ID}}" [label="{{.Label}}", shape={{.Shape}}{{if .Color}}, style=filled, fillcolor={{.Color}}{{end}}];
{{- end}}
{{- range .Edges}}
  "{{.From}}" -> "{{.To}}";
{{- end}}
}
`))

type dotNode struct {
	ID, Label, Shape, Color string
}

type dotEdge struct {
	From, To string
}

type dotData struct {
	Nodes []dotNode
	Edges []dotEdge
}

// WriteDOT renders g as a Graphviz DOT file at path: subassemblies as
// ovals, actions as boxes, and any action with a non-empty AssignedAgent
// (as produced by Annotate) highlighted.
func WriteDOT(g *assembly.Graph, path string) error {
	data := dotData{}
	for _, id := range sortedNodeIDs(g) {
		nd, err := g.NodeData(id)
		if err != nil {
			return fmt.Errorf("xmlio: internal: %w", err)
		}
		switch v := nd.(type) {
		case assembly.SubassemblyData:
			data.Nodes = append(data.Nodes, dotNode{ID: id, Label: v.Name, Shape: "oval"})
		case assembly.ActionData:
			label := v.Name
			color := ""
			if v.AssignedAgent != "" {
				label = fmt.Sprintf("%s\\n(%s, cost %s)", v.Name, v.AssignedAgent, formatCostValue(v.Costs[v.AssignedAgent]))
				color = "lightblue"
			}
			data.Nodes = append(data.Nodes, dotNode{ID: id, Label: label, Shape: "box", Color: color})
		}
	}
	for _, id := range sortedNodeIDs(g) {
		for _, succ := range g.SuccessorNodes(id) {
			data.Edges = append(data.Edges, dotEdge{From: id, To: succ})
		}
	}

	var buf strings.Builder
	if err := dotTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("xmlio: render dot: %w", err)
	}
	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("xmlio: write %s: %w", path, err)
	}
	return nil
}
