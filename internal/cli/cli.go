package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/stepper/internal/app"
	"github.com/specialistvlad/stepper/internal/numeric"
	"github.com/specialistvlad/stepper/internal/step"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrUsage is returned when the positional arguments do not match either
// supported invocation.
var ErrUsage = errors.New("Usage: stepper <value-type> <direction> <current-value> <config-file-path>")

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Two invocations are accepted:
//
//	stepper [options] <value-type> <direction> <current-value> <config-file-path>
//	stepper [options] <direction> <current-value> <config-file-path>
//
// The second is the legacy form and always uses f32 values.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("stepper", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
stepper - Step a value through a list of preset values.

Usage:
  stepper [options] <value-type> <direction> <current-value> <config-file-path>
  stepper [options] <direction> <current-value> <config-file-path>

Arguments:
  value-type
    'f32' (floating point) or 'u32' (non-negative integer). Defaults to f32
    in the three-argument form.
  direction
    'top', 'up', 'down' or 'bottom'.
  current-value
    The value to step from. It does not need to be one of the presets.
  config-file-path
    Candidate values: one per line ('#' starts a comment), or a 'values'
    list in a .hcl, .yaml/.yml or .toml file.

Options:
`)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := app.Config{LogFormat: logFormat, LogLevel: logLevel}
	positional := flagSet.Args()
	var typeArg string
	switch len(positional) {
	case 4:
		typeArg, positional = positional[0], positional[1:]
	case 3:
		cfg.Legacy = true
		typeArg = string(numeric.Float32)
	default:
		slog.Debug("Wrong number of positional arguments.", "count", len(positional))
		return nil, false, usageError(ErrUsage)
	}

	direction, err := step.ParseDirection(positional[0])
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: step.ErrInvalidDirection.Error(), Err: err}
	}
	valueType, err := numeric.ParseType(typeArg)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: numeric.ErrInvalidType.Error(), Err: err}
	}
	cfg.Direction = direction
	cfg.ValueType = valueType
	cfg.CurrentValue = positional[1]
	cfg.ConfigPath = positional[2]
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
