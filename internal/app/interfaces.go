package app

import (
	"context"

	"github.com/symm3try/assembly-planner/internal/planner"
	"github.com/symm3try/assembly-planner/internal/xmlio"
)

// ReportPoster is the seam between App and wherever a finished plan's
// report goes. The default implementation posts over HTTP via
// internal/xmlio; tests substitute a generated mock so a report-url run
// can be exercised without a network call.
type ReportPoster interface {
	Post(ctx context.Context, url string, result *planner.Result) error
}

type httpReportPoster struct{}

func (httpReportPoster) Post(ctx context.Context, url string, result *planner.Result) error {
	return xmlio.PostReport(ctx, url, result)
}
