package xmlio

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/symm3try/assembly-planner/internal/planner"
)

// ExportedPlan is the msgpack wire shape of a planner.Result: a flat,
// dependency-free mirror of the plan that doesn't carry the graph or
// combinator types along with it.
type ExportedPlan struct {
	TotalCost float64        `msgpack:"total_cost"`
	Steps     []ExportedStep `msgpack:"steps"`
}

// ExportedStep is one concurrent round of the plan.
type ExportedStep struct {
	Cost        float64              `msgpack:"cost"`
	Assignments []ExportedAssignment `msgpack:"assignments"`
}

// ExportedAssignment names the agent and action of one assignment within
// a step.
type ExportedAssignment struct {
	Agent  string `msgpack:"agent"`
	Action string `msgpack:"action"`
}

func toExportedPlan(result *planner.Result) ExportedPlan {
	out := ExportedPlan{TotalCost: result.TotalCost}
	for _, step := range result.Steps {
		es := ExportedStep{Cost: step.Cost}
		for _, a := range step.Assignments {
			es.Assignments = append(es.Assignments, ExportedAssignment{Agent: a.Agent, Action: a.Action})
		}
		out.Steps = append(out.Steps, es)
	}
	return out
}

// WriteMsgpack serializes result as msgpack to path. When compress is
// true the file is additionally gzipped, matching the --compress CLI
// flag.
func WriteMsgpack(result *planner.Result, path string, compress bool) error {
	encoded, err := msgpack.Marshal(toExportedPlan(result))
	if err != nil {
		return fmt.Errorf("xmlio: marshal msgpack: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xmlio: create %s: %w", path, err)
	}
	defer f.Close()

	if !compress {
		if _, err := f.Write(encoded); err != nil {
			return fmt.Errorf("xmlio: write %s: %w", path, err)
		}
		return nil
	}

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(encoded); err != nil {
		return fmt.Errorf("xmlio: gzip %s: %w", path, err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("xmlio: finalize gzip %s: %w", path, err)
	}
	return nil
}

// CompressFile gzips path's contents in place, replacing the plain file
// with its gzipped form under the same name. It is used to honor
// --compress for the XML and DOT sinks, which (unlike WriteMsgpack) have
// no compress parameter of their own since Write and WriteDOT are also
// exercised directly by tests that expect plain output.
func CompressFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("xmlio: read %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xmlio: create %s: %w", path, err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(raw); err != nil {
		return fmt.Errorf("xmlio: gzip %s: %w", path, err)
	}
	return gz.Close()
}
