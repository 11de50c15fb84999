package cli

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/symm3try/assembly-planner/internal/planner"
)

// PrintSummary writes a one-line summary of a found plan in green. It
// must not be called with a nil result; a run that found no plan is
// reported with PrintFailure instead.
func PrintSummary(output io.Writer, result *planner.Result) {
	line := fmt.Sprintf("plan found: %d step(s), total cost %.4g", len(result.Steps), result.TotalCost)
	fmt.Fprintln(output, color.FgGreen.Render(line))
}

// PrintFailure writes a red one-line summary for a run that found no
// plan at all.
func PrintFailure(output io.Writer, reason error) {
	fmt.Fprintln(output, color.FgRed.Render(fmt.Sprintf("no plan found: %v", reason)))
}
