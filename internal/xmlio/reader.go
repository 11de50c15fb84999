package xmlio

import (
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/symm3try/assembly-planner/internal/assembly"
)

// xmlDocument mirrors the <assembly> schema. Field order follows the
// document, not the Go convention of grouping by kind, because
// encoding/xml matches elements by name regardless of struct field order
// anyway; keeping it document-order just makes the two easier to compare.
type xmlDocument struct {
	XMLName xml.Name  `xml:"assembly"`
	Agents  xmlAgents `xml:"agents"`
	Graph   xmlGraph  `xml:"graph"`
}

type xmlAgents struct {
	Agent []xmlAgent `xml:"agent"`
}

type xmlAgent struct {
	Name string `xml:"name,attr"`
	Host string `xml:"host,attr"`
	Port string `xml:"port,attr"`
}

type xmlGraph struct {
	Root  string   `xml:"root,attr"`
	Nodes []xmlNode `xml:"nodes>node"`
	Edges []xmlEdge `xml:"edges>edge"`
}

type xmlNode struct {
	Name  string     `xml:"name,attr"`
	Type  string     `xml:"type,attr"`
	Costs []xmlCost  `xml:"cost"`
	Reach []xmlReach `xml:"reach"`
}

type xmlReach struct {
	Agent       string          `xml:"agent,attr"`
	Reachable   string          `xml:"reachable,attr"`
	Interaction *xmlInteraction `xml:"interaction"`
}

type xmlInteraction struct {
	Name  string    `xml:"name,attr"`
	Costs []xmlCost `xml:"cost"`
}

type xmlCost struct {
	Agent string `xml:"agent,attr"`
	Value string `xml:"value,attr"`
}

type xmlEdge struct {
	Start string `xml:"start,attr"`
	End   string `xml:"end,attr"`
}

// Read loads the assembly graph and agent configuration described by the
// XML document at path. It mirrors the source reader's two-pass shape:
// every node is inserted before any edge, and the result is run through
// assembly.Validate before being handed back.
func Read(path string) (*assembly.Graph, *assembly.Configuration, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("xmlio: read %s: %w", path, err)
	}

	var doc xmlDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("xmlio: parse %s: %w", path, err)
	}

	if len(doc.Agents.Agent) == 0 {
		return nil, nil, fmt.Errorf("xmlio: %s: no agents provided", path)
	}
	cfg := &assembly.Configuration{}
	for _, a := range doc.Agents.Agent {
		cfg.Agents = append(cfg.Agents, assembly.Agent{Name: a.Name, Host: a.Host, Port: a.Port})
	}

	agentNames := cfg.AgentNames()
	nodeNames := make([]string, len(doc.Graph.Nodes))
	for i, n := range doc.Graph.Nodes {
		nodeNames[i] = n.Name
	}

	f := assembly.NewFactory()
	for _, n := range doc.Graph.Nodes {
		switch n.Type {
		case "OR":
			if err := f.InsertOr(n.Name); err != nil {
				return nil, nil, fmt.Errorf("xmlio: node %q: %w", n.Name, err)
			}
			if err := applyReachmap(f, n, agentNames); err != nil {
				return nil, nil, err
			}
		case "AND":
			if err := f.InsertAnd(n.Name); err != nil {
				return nil, nil, fmt.Errorf("xmlio: node %q: %w", n.Name, err)
			}
			if err := applyCostmap(f, n.Name, n.Costs, agentNames); err != nil {
				return nil, nil, err
			}
		default:
			return nil, nil, fmt.Errorf("xmlio: node %q: unsupported type %q", n.Name, n.Type)
		}
	}

	for _, e := range doc.Graph.Edges {
		if err := f.InsertEdge(e.Start, e.End); err != nil {
			switch {
			case strings.Contains(err.Error(), "source"):
				err = withSuggestion(err, e.Start, nodeNames)
			case strings.Contains(err.Error(), "destination"):
				err = withSuggestion(err, e.End, nodeNames)
			}
			return nil, nil, fmt.Errorf("xmlio: edge %s->%s: %w", e.Start, e.End, err)
		}
	}

	if doc.Graph.Root == "" {
		return nil, nil, fmt.Errorf("xmlio: %s: graph element has no root attribute", path)
	}
	if err := f.SetRoot(doc.Graph.Root); err != nil {
		return nil, nil, fmt.Errorf("xmlio: root %q: %w", doc.Graph.Root, err)
	}

	g := f.Graph()
	if err := assembly.Validate(g, cfg); err != nil {
		return nil, nil, err
	}
	return g, cfg, nil
}

func applyReachmap(f *assembly.Factory, n xmlNode, agentNames []string) error {
	for _, r := range n.Reach {
		if err := checkKnownAgent(r.Agent, agentNames); err != nil {
			return fmt.Errorf("xmlio: reach %s/%s: %w", n.Name, r.Agent, err)
		}
		switch strings.ToLower(r.Reachable) {
		case "true":
			if err := f.SetReachability(n.Name, r.Agent, true, nil); err != nil {
				return fmt.Errorf("xmlio: reach %s/%s: %w", n.Name, r.Agent, err)
			}
		case "false":
			helper, err := parseInteraction(r.Interaction, n.Name, r.Agent, agentNames)
			if err != nil {
				return err
			}
			if err := f.SetReachability(n.Name, r.Agent, false, helper); err != nil {
				return fmt.Errorf("xmlio: reach %s/%s: %w", n.Name, r.Agent, err)
			}
		default:
			return fmt.Errorf("xmlio: reach %s/%s: reachable must be \"true\" or \"false\", got %q", n.Name, r.Agent, r.Reachable)
		}
	}
	return nil
}

func parseInteraction(in *xmlInteraction, subassembly, agent string, agentNames []string) (*assembly.ActionData, error) {
	if in == nil {
		return nil, fmt.Errorf("xmlio: subassembly %q, agent %q: unreachable reach entry has no <interaction>", subassembly, agent)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("xmlio: subassembly %q, agent %q: <interaction> has no name attribute", subassembly, agent)
	}
	helper := &assembly.ActionData{Name: in.Name, IsInteraction: true, Costs: make(map[string]float64)}
	if err := applyCostmapInto(helper.Costs, in.Costs, agentNames); err != nil {
		return nil, fmt.Errorf("xmlio: interaction %q: %w", in.Name, err)
	}
	return helper, nil
}

func applyCostmap(f *assembly.Factory, action string, costs []xmlCost, agentNames []string) error {
	for _, c := range costs {
		if err := checkKnownAgent(c.Agent, agentNames); err != nil {
			return fmt.Errorf("xmlio: cost %s/%s: %w", action, c.Agent, err)
		}
		cost, err := parseCostValue(c.Value)
		if err != nil {
			return fmt.Errorf("xmlio: cost %s/%s: %w", action, c.Agent, err)
		}
		if err := f.SetCost(action, c.Agent, cost); err != nil {
			return fmt.Errorf("xmlio: cost %s/%s: %w", action, c.Agent, err)
		}
	}
	return nil
}

func applyCostmapInto(dst map[string]float64, costs []xmlCost, agentNames []string) error {
	for _, c := range costs {
		if err := checkKnownAgent(c.Agent, agentNames); err != nil {
			return err
		}
		cost, err := parseCostValue(c.Value)
		if err != nil {
			return err
		}
		dst[c.Agent] = cost
	}
	return nil
}

// checkKnownAgent reports an error, annotated with a "did you mean"
// suggestion computed over agentNames, when agent does not name one of
// the agents declared in the document's <agents> block.
func checkKnownAgent(agent string, agentNames []string) error {
	for _, known := range agentNames {
		if known == agent {
			return nil
		}
	}
	err := fmt.Errorf("unknown agent %q", agent)
	return withSuggestion(err, agent, agentNames)
}

const suggestionMaxDistance = 3

// withSuggestion appends a "did you mean" suggestion to err when typo is
// within edit distance of one of the known names, the way cli.Parse
// annotates an unrecognized flag.
func withSuggestion(err error, typo string, known []string) error {
	best, bestDist := "", -1
	for _, name := range known {
		d := levenshtein.Distance(typo, name, nil)
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	if bestDist >= 0 && bestDist <= suggestionMaxDistance {
		return fmt.Errorf("%w (did you mean %q?)", err, best)
	}
	return err
}

func parseCostValue(raw string) (float64, error) {
	if strings.ToLower(raw) == "inf" {
		return math.Inf(1), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("cost value %q is neither a number nor \"inf\"", raw)
	}
	return v, nil
}
