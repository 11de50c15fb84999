package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/symm3try/assembly-planner/internal/app"
	"github.com/symm3try/assembly-planner/internal/cli"
	"github.com/symm3try/assembly-planner/internal/search"
)

// main is the entrypoint for the assembly-planner CLI.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and
// error handling.
func run(outW io.Writer, args []string) (err error) {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	planApp, buildErr := app.NewApp(outW, cfg)
	if buildErr != nil {
		return buildErr
	}

	result, runErr := planApp.Run(planApp.Context())
	if runErr != nil {
		var failure *search.PlanFailure
		if errors.As(runErr, &failure) {
			cli.PrintFailure(outW, runErr)
			return &cli.ExitError{Code: 2, Message: runErr.Error()}
		}
		return runErr
	}

	cli.PrintSummary(outW, result)
	return nil
}
