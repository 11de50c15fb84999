package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/mitchellh/go-wordwrap"

	"github.com/symm3try/assembly-planner/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageWidth = 80

var knownFlags = []string{
	"dot", "export-format", "report-url", "config", "log-format", "log-level", "compress", "help",
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("planner", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, wordwrap.WrapString(
			"assembly-planner plans agent/action assignments for an AND/OR "+
				"assembly graph using A* search over the combinatorial space "+
				"of agent-to-action assignments.\n\n", usageWidth))
		fmt.Fprint(output, "Usage:\n  planner [options] INPUT_XML OUTPUT_XML\n\nOptions:\n")
		flagSet.PrintDefaults()
	}

	dotFlag := flagSet.String("dot", "", "Write a Graphviz DOT visualization of the solved graph to this path.")
	exportFormatFlag := flagSet.String("export-format", "", "Output format for OUTPUT_XML's contents: 'xml' or 'msgpack'. Defaults to the run config, or 'xml'.")
	reportURLFlag := flagSet.String("report-url", "", "POST the resulting plan as JSON to this URL after writing it.")
	configFlag := flagSet.String("config", "", "Path to an optional run.hcl file with operational defaults.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn', or 'error'.")
	compressFlag := flagSet.Bool("compress", false, "Gzip the written output(s) in place.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: annotateUnknownFlag(err.Error())}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() != 2 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected INPUT_XML and OUTPUT_XML, got %d positional argument(s)", flagSet.NArg())}
	}

	if *exportFormatFlag != "" && *exportFormatFlag != "xml" && *exportFormatFlag != "msgpack" {
		return nil, false, &ExitError{Code: 2, Message: "invalid export-format: must be 'xml' or 'msgpack'"}
	}
	if *logFormatFlag != "" && *logFormatFlag != "text" && *logFormatFlag != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	if lvl := strings.ToLower(*logLevelFlag); lvl != "" {
		switch lvl {
		case "debug", "info", "warn", "error":
		default:
			return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
		}
	}

	cfg := &app.Config{
		InputPath:    flagSet.Arg(0),
		OutputPath:   flagSet.Arg(1),
		DotPath:      *dotFlag,
		ConfigPath:   *configFlag,
		ExportFormat: *exportFormatFlag,
		ReportURL:    *reportURLFlag,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
		Compress:     *compressFlag,
	}
	return cfg, false, nil
}

// annotateUnknownFlag appends a "did you mean" suggestion to flag's own
// "flag provided but not defined: -x" error when a known flag is close
// in edit distance, the way a typo in a long flag name usually is.
func annotateUnknownFlag(message string) string {
	const marker = "flag provided but not defined: -"
	idx := strings.Index(message, marker)
	if idx < 0 {
		return message
	}
	typo := strings.TrimPrefix(message[idx+len(marker):], "-")

	best, bestDist := "", -1
	for _, known := range knownFlags {
		d := levenshtein.Distance(typo, known, nil)
		if bestDist < 0 || d < bestDist {
			best, bestDist = known, d
		}
	}
	if bestDist >= 0 && bestDist <= 3 {
		return message + " (did you mean -" + best + "?)"
	}
	return message
}
