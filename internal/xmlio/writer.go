package xmlio

import (
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/symm3try/assembly-planner/internal/assembly"
)

type xmlOutDocument struct {
	XMLName xml.Name    `xml:"assembly"`
	Agents  xmlOutAgents `xml:"agents"`
	Graph   xmlOutGraph  `xml:"graph"`
}

type xmlOutAgents struct {
	Agent []xmlOutAgentEntry `xml:"agent"`
}

type xmlOutAgentEntry struct {
	Name string `xml:"name,attr"`
	Host string `xml:"host,attr"`
	Port string `xml:"port,attr"`
}

type xmlOutGraph struct {
	Root  string      `xml:"root,attr"`
	Nodes xmlOutNodes `xml:"nodes"`
	Edges xmlOutEdges `xml:"edges"`
}

type xmlOutNodes struct {
	Node []xmlOutNode `xml:"node"`
}

type xmlOutNode struct {
	Name  string        `xml:"name,attr"`
	Type  string        `xml:"type,attr"`
	Agent *xmlOutAgentRef `xml:"agent"`
	Costs []xmlOutCost    `xml:"cost"`
	Reach []xmlOutReach   `xml:"reach"`
}

// xmlOutAgentRef names the agent a solved AND node was assigned to. It is
// omitted for a graph that hasn't been through Annotate.
type xmlOutAgentRef struct {
	Name string `xml:"name,attr"`
}

type xmlOutReach struct {
	Agent       string          `xml:"agent,attr"`
	Reachable   string          `xml:"reachable,attr"`
	Interaction *xmlOutInteraction `xml:"interaction"`
}

type xmlOutInteraction struct {
	Name  string       `xml:"name,attr"`
	Costs []xmlOutCost `xml:"cost"`
}

type xmlOutCost struct {
	Agent string `xml:"agent,attr"`
	Value string `xml:"value,attr"`
}

type xmlOutEdges struct {
	Edge []xmlOutEdge `xml:"edge"`
}

type xmlOutEdge struct {
	Start string `xml:"start,attr"`
	End   string `xml:"end,attr"`
}

// Write serializes g and cfg to path as a complete <assembly> document:
// agents, every node's full reach/cost data, and edges. This is stronger
// than the source writer, which only ever emitted a solved graph's shape
// (node/type/assigned-agent) and was never meant to be read back in; here
// Write's output is always a valid Read input again, satisfying the
// round-trip property. Unlike the source, which stores an edge's
// endpoints under "from"/"to" with source and destination swapped, this
// writer uses "start"/"end" with their natural meaning, matching the
// schema Read expects.
func Write(g *assembly.Graph, cfg *assembly.Configuration, path string) error {
	root, ok := g.Root()
	if !ok {
		return fmt.Errorf("xmlio: graph has no root to write")
	}

	doc := xmlOutDocument{Graph: xmlOutGraph{Root: root}}
	for _, a := range cfg.Agents {
		doc.Agents.Agent = append(doc.Agents.Agent, xmlOutAgentEntry{Name: a.Name, Host: a.Host, Port: a.Port})
	}

	for _, id := range sortedNodeIDs(g) {
		data, err := g.NodeData(id)
		if err != nil {
			return fmt.Errorf("xmlio: internal: %w", err)
		}
		switch v := data.(type) {
		case assembly.SubassemblyData:
			n := xmlOutNode{Name: v.Name, Type: "OR"}
			for _, agent := range sortedKeys(v.Reachability) {
				r := v.Reachability[agent]
				out := xmlOutReach{Agent: agent, Reachable: strconv.FormatBool(r.Reachable)}
				if !r.Reachable && r.Helper != nil {
					out.Interaction = &xmlOutInteraction{Name: r.Helper.Name, Costs: costEntries(r.Helper.Costs)}
				}
				n.Reach = append(n.Reach, out)
			}
			doc.Graph.Nodes.Node = append(doc.Graph.Nodes.Node, n)
		case assembly.ActionData:
			n := xmlOutNode{Name: v.Name, Type: "AND", Costs: costEntries(v.Costs)}
			if v.AssignedAgent != "" {
				n.Agent = &xmlOutAgentRef{Name: v.AssignedAgent}
			}
			doc.Graph.Nodes.Node = append(doc.Graph.Nodes.Node, n)
		default:
			return fmt.Errorf("xmlio: node %q has unwritable kind %v", id, data.Kind())
		}
	}

	for _, id := range sortedNodeIDs(g) {
		for _, succ := range g.SuccessorNodes(id) {
			doc.Graph.Edges.Edge = append(doc.Graph.Edges.Edge, xmlOutEdge{Start: id, End: succ})
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("xmlio: marshal: %w", err)
	}
	out = append([]byte(xml.Header), out...)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("xmlio: write %s: %w", path, err)
	}
	return nil
}

func costEntries(costs map[string]float64) []xmlOutCost {
	var out []xmlOutCost
	for _, agent := range sortedKeysFloat(costs) {
		out = append(out, xmlOutCost{Agent: agent, Value: formatCostValue(costs[agent])})
	}
	return out
}

func formatCostValue(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func sortedNodeIDs(g *assembly.Graph) []string {
	ids := g.NodeIDs()
	sort.Strings(ids)
	return ids
}

func sortedKeys(m map[string]assembly.Reach) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysFloat(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
