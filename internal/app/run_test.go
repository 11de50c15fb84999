package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/symm3try/assembly-planner/internal/ctxlog"
)

const singleActionXML = `<?xml version="1.0"?>
<assembly>
  <agents><agent name="a" host="h" port="1"/></agents>
  <graph root="S0">
    <nodes>
      <node name="S0" type="OR"><reach agent="a" reachable="true"/></node>
      <node name="S1" type="OR"><reach agent="a" reachable="true"/></node>
      <node name="A1" type="AND"><cost agent="a" value="3"/></node>
    </nodes>
    <edges>
      <edge start="S0" end="A1"/>
      <edge start="A1" end="S1"/>
    </edges>
  </graph>
</assembly>
`

func testApp(t *testing.T, reporter ReportPoster, extraCfg func(*Config)) *App {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.xml")
	require.NoError(t, os.WriteFile(in, []byte(singleActionXML), 0o644))

	cfg := &Config{InputPath: in, OutputPath: filepath.Join(dir, "out.xml")}
	if extraCfg != nil {
		extraCfg(cfg)
	}

	a, err := NewApp(&bytes.Buffer{}, cfg)
	require.NoError(t, err)
	if reporter != nil {
		a.reporter = reporter
	}
	return a
}

func TestRunWritesSolutionAndReturnsResult(t *testing.T) {
	a := testApp(t, nil, nil)
	result, err := a.Run(a.Context())
	require.NoError(t, err)
	require.Len(t, result.Steps, 1)
	require.Equal(t, 3.0, result.TotalCost)

	_, statErr := os.Stat(a.cfg.OutputPath)
	require.NoError(t, statErr)
}

func TestRunPostsReportWhenReportURLConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReporter := NewMockReportPoster(ctrl)
	mockReporter.EXPECT().
		Post(gomock.Any(), "https://example.test/report", gomock.Any()).
		Return(nil).
		Times(1)

	a := testApp(t, mockReporter, func(cfg *Config) {
		cfg.ReportURL = "https://example.test/report"
	})

	_, err := a.Run(a.Context())
	require.NoError(t, err)
}

func TestRunToleratesReportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReporter := NewMockReportPoster(ctrl)
	mockReporter.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(context.DeadlineExceeded)

	a := testApp(t, mockReporter, func(cfg *Config) {
		cfg.ReportURL = "https://example.test/report"
	})

	// A report-post failure must not fail the run: the plan was already
	// found and written successfully.
	result, err := a.Run(a.Context())
	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestContextCarriesLogger(t *testing.T) {
	a := testApp(t, nil, nil)
	ctx := a.Context()
	require.NotPanics(t, func() { ctxlog.FromContext(ctx) })
}
