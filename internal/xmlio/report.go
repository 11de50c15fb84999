package xmlio

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/symm3try/assembly-planner/internal/planner"
)

// PostReport sends result to url as a JSON body, for the --report-url
// flag. The POST is synchronous, with a 10-second timeout and up to two
// retries through resty's retry policy; a transport failure or an error
// status from the endpoint is returned as an error.
func PostReport(ctx context.Context, url string, result *planner.Result) error {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	defer client.Close()

	resp, err := client.R().
		SetContext(ctx).
		SetBody(toExportedPlan(result)).
		Post(url)
	if err != nil {
		return fmt.Errorf("xmlio: post report to %s: %w", url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("xmlio: report endpoint %s returned %s", url, resp.Status())
	}
	return nil
}
