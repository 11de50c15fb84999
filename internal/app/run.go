package app

import (
	"context"
	"fmt"

	"github.com/symm3try/assembly-planner/internal/assembly"
	"github.com/symm3try/assembly-planner/internal/planner"
	"github.com/symm3try/assembly-planner/internal/xmlio"
)

// Run executes one planning pass: read the assembly graph at
// cfg.InputPath, search for a plan, write it to cfg.OutputPath (and the
// optional DOT/report sinks), and return the plan for the caller to
// summarize.
func (a *App) Run(ctx context.Context) (*planner.Result, error) {
	a.logger.Debug("run started", "input", a.cfg.InputPath)

	g, agentCfg, err := xmlio.Read(a.cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", a.cfg.InputPath, err)
	}
	a.logger.Debug("assembly graph loaded", "nodes", g.NumberOfNodes(), "edges", g.NumberOfEdges())

	result, err := planner.Plan(ctx, g, agentCfg, a.run.NodeBudget)
	if err != nil {
		return nil, fmt.Errorf("planning failed: %w", err)
	}

	annotated, err := xmlio.Annotate(g, result)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate solution graph: %w", err)
	}

	if err := a.writeOutput(annotated, agentCfg, result); err != nil {
		return nil, err
	}

	if a.cfg.DotPath != "" {
		if err := xmlio.WriteDOT(annotated, a.cfg.DotPath); err != nil {
			return nil, fmt.Errorf("failed to write dot visualization: %w", err)
		}
		if a.run.Compress {
			if err := xmlio.CompressFile(a.cfg.DotPath); err != nil {
				return nil, fmt.Errorf("failed to compress %s: %w", a.cfg.DotPath, err)
			}
		}
		a.logger.Debug("dot visualization written", "path", a.cfg.DotPath)
	}

	if a.run.ReportURL != "" {
		if err := a.reporter.Post(ctx, a.run.ReportURL, result); err != nil {
			// A failed report POST never invalidates a plan that was
			// otherwise found and written successfully.
			a.logger.Warn("failed to post plan report", "url", a.run.ReportURL, "error", err)
		} else {
			a.logger.Debug("plan report posted", "url", a.run.ReportURL)
		}
	}

	a.logger.Info("run finished", "steps", len(result.Steps), "total_cost", result.TotalCost)
	return result, nil
}

// writeOutput writes the solution in whichever export format the
// resolved run configuration names.
func (a *App) writeOutput(annotated *assembly.Graph, agentCfg *assembly.Configuration, result *planner.Result) error {
	switch a.run.ExportFormat {
	case "msgpack":
		if err := xmlio.WriteMsgpack(result, a.cfg.OutputPath, a.run.Compress); err != nil {
			return fmt.Errorf("failed to write msgpack output: %w", err)
		}
	case "xml":
		if err := xmlio.Write(annotated, agentCfg, a.cfg.OutputPath); err != nil {
			return fmt.Errorf("failed to write %s: %w", a.cfg.OutputPath, err)
		}
		if a.run.Compress {
			if err := xmlio.CompressFile(a.cfg.OutputPath); err != nil {
				return fmt.Errorf("failed to compress %s: %w", a.cfg.OutputPath, err)
			}
		}
	default:
		return fmt.Errorf("unsupported export format %q", a.run.ExportFormat)
	}
	a.logger.Debug("solution written", "path", a.cfg.OutputPath, "format", a.run.ExportFormat)
	return nil
}
