package runconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHCL(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	path := writeHCL(t, `log_level = "debug"`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "xml", cfg.ExportFormat)
	assert.Equal(t, 0, cfg.NodeBudget)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	path := writeHCL(t, `log_level = "verbose"`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsNegativeNodeBudget(t *testing.T) {
	path := writeHCL(t, `node_budget = -1`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadHonorsAllFields(t *testing.T) {
	path := writeHCL(t, `
log_level     = "warn"
log_format    = "json"
export_format = "msgpack"
report_url    = "https://example.test/report"
compress      = true
node_budget   = 5000
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "msgpack", cfg.ExportFormat)
	assert.Equal(t, "https://example.test/report", cfg.ReportURL)
	assert.True(t, cfg.Compress)
	assert.Equal(t, 5000, cfg.NodeBudget)
}
