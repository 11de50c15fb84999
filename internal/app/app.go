package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/symm3try/assembly-planner/internal/ctxlog"
	"github.com/symm3try/assembly-planner/internal/runconfig"
)

// Config holds everything a run of the planner needs: the CLI-supplied
// paths and flags, merged over any run.hcl operational defaults.
type Config struct {
	InputPath    string
	OutputPath   string
	DotPath      string
	ConfigPath   string
	ExportFormat string
	ReportURL    string
	LogFormat    string
	LogLevel     string
	Compress     bool
}

// App encapsulates the planner run's dependencies: its logger, the
// resolved run configuration, and the report-posting seam.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	run      *runconfig.Config
	cfg      *Config
	reporter ReportPoster
}

// NewApp constructs an App. If cfg.ConfigPath is set, it is loaded and
// merged under the CLI flags, which always win over the file: a flag the
// user typed on the command line is a more specific request than a
// standing default in a committed run.hcl.
func NewApp(outW io.Writer, cfg *Config) (*App, error) {
	run := runconfig.Default()
	if cfg.ConfigPath != "" {
		loaded, err := runconfig.Load(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load run configuration: %w", err)
		}
		run = loaded
	}
	mergeCLIOverrides(run, cfg)

	logger := newLogger(run.LogLevel, run.LogFormat, outW)
	logger.Debug("logger configured", "level", run.LogLevel, "format", run.LogFormat)

	return &App{outW: outW, logger: logger, run: run, cfg: cfg, reporter: httpReportPoster{}}, nil
}

// mergeCLIOverrides applies any non-empty/non-zero CLI value over the
// loaded run configuration.
func mergeCLIOverrides(run *runconfig.Config, cfg *Config) {
	if cfg.LogFormat != "" {
		run.LogFormat = cfg.LogFormat
	}
	if cfg.LogLevel != "" {
		run.LogLevel = cfg.LogLevel
	}
	if cfg.ExportFormat != "" {
		run.ExportFormat = cfg.ExportFormat
	}
	if cfg.ReportURL != "" {
		run.ReportURL = cfg.ReportURL
	}
	if cfg.Compress {
		run.Compress = true
	}
}

// Context returns a background context carrying the App's logger, for
// callers (main, tests) that need one to pass to Run.
func (a *App) Context() context.Context {
	return ctxlog.WithLogger(context.Background(), a.logger)
}
