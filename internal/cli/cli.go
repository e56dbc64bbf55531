package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
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

// Options holds the parsed command line.
type Options struct {
	MazePath   string
	ConfigPath string
	One        bool
	Metrics    bool
	// LogLevel and LogFormat override the configuration file when non-empty.
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns the Options, a boolean
// indicating if the program should exit cleanly (help was requested), or an
// ExitError with code 2 for usage errors.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
mazesolve - find the cheapest routes through a .maze file.

Usage:
  mazesolve [options] MAZE_PATH

Arguments:
  MAZE_PATH
    Path to a binary maze file.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML configuration file.")
	oneFlag := flagSet.Bool("one", false, "Print a single cheapest route instead of all tying routes.")
	metricsFlag := flagSet.Bool("metrics", false, "Write Prometheus metrics to stderr after solving.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	switch flagSet.NArg() {
	case 0:
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing MAZE_PATH"}
	case 1:
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected one MAZE_PATH, got %d arguments", flagSet.NArg())}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	switch logFormat {
	case "", "text", "json":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Options{
		MazePath:   flagSet.Arg(0),
		ConfigPath: *configFlag,
		One:        *oneFlag,
		Metrics:    *metricsFlag,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
	}, false, nil
}
