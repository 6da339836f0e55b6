// Command searchkit runs search scenarios described in HCL files and
// logs each resulting plan with its diagnostics.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/searchkit/internal/ctxlog"
	"github.com/katalvlaran/searchkit/internal/scenario"
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

// main is the entrypoint for the searchkit CLI.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and
// error handling.
func run(outW io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("searchkit", flag.ContinueOnError)
	flagSet.SetOutput(outW)

	flagSet.Usage = func() {
		fmt.Fprint(outW, `
searchkit - classical AI search over implicit state graphs.

Usage:
  searchkit [options] [SCENARIO_PATH]

Arguments:
  SCENARIO_PATH
    Path to an .hcl file containing scenario blocks.

Options:
`)
		flagSet.PrintDefaults()
	}

	scenariosFlag := flagSet.String("scenarios", "", "Path to the scenario file.")
	sFlag := flagSet.String("s", "", "Path to the scenario file (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}

		return &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *scenariosFlag != "" {
		path = *scenariosFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()

		return nil
	}

	logger, err := buildLogger(strings.ToLower(*logFormatFlag), strings.ToLower(*logLevelFlag))
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	scenarios, err := scenario.Load(ctx, path)
	if err != nil {
		return err
	}
	logger.Info("Loaded scenarios.", "path", path, "count", len(scenarios))

	for _, sc := range scenarios {
		report, err := scenario.Run(ctx, sc)
		if err != nil {
			return err
		}
		logger.Info("Scenario finished.",
			"run_id", report.RunID,
			"scenario", report.Scenario,
			"strategy", report.Strategy,
			"found", report.Found,
			"plan", report.Plan,
			"visited", report.Visited,
			"cost", report.Cost,
			"elapsed", report.Elapsed,
		)
	}

	return nil
}

// buildLogger validates the CLI logging flags and assembles the slog
// handler they describe.
func buildLogger(format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	default:
		return nil, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
}
