package runconfig

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config holds the operational settings a run.hcl file may override. Any
// field left unset in the file keeps its Default* value.
type Config struct {
	LogLevel     string `hcl:"log_level,optional"`
	LogFormat    string `hcl:"log_format,optional"`
	ExportFormat string `hcl:"export_format,optional"`
	ReportURL    string `hcl:"report_url,optional"`
	Compress     bool   `hcl:"compress,optional"`
	// NodeBudget caps how many search-graph nodes AStar.Search may expand
	// before giving up; zero means unbounded. It exists to bound a
	// pathological search on a misbehaving or adversarial input graph.
	NodeBudget int `hcl:"node_budget,optional"`
}

// Default returns the configuration used when no run.hcl is provided.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		LogFormat:    "text",
		ExportFormat: "xml",
	}
}

// Load parses the HCL file at path into a Config seeded with Default
// values, so fields the file omits keep their default.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("runconfig: parse %s: %w", path, diags)
	}

	cfg := Default()
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("runconfig: decode %s: %w", path, diags)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("runconfig: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}
	switch c.ExportFormat {
	case "xml", "msgpack":
	default:
		return fmt.Errorf("invalid export_format %q", c.ExportFormat)
	}
	if c.NodeBudget < 0 {
		return fmt.Errorf("node_budget must be >= 0, got %d", c.NodeBudget)
	}
	return nil
}
