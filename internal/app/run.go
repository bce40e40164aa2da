package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/stepper/internal/ctxlog"
	"github.com/specialistvlad/stepper/internal/numeric"
)

// Run resolves the next value and writes it, followed by a newline, to the
// app's output. Nothing is written unless every step succeeds.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.",
		"value_type", a.config.ValueType,
		"direction", a.config.Direction,
		"current", a.config.CurrentValue,
		"config_path", a.config.ConfigPath,
	)

	var (
		out string
		err error
	)
	switch a.config.ValueType {
	case numeric.Float32:
		out, err = resolveAs(ctx, a, numeric.ParseFloat32, numeric.FormatFloat32)
	case numeric.Uint32:
		out, err = resolveAs(ctx, a, numeric.ParseUint32, numeric.FormatUint32)
	default:
		_, err = numeric.ParseType(string(a.config.ValueType))
	}
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(a.outW, out); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	a.logger.Debug("App.Run method finished.", "result", out)
	return nil
}

// currentValueHint explains what the current value should have looked like.
func (a *App) currentValueHint() string {
	if a.config.Legacy {
		return fmt.Sprintf("<current-value> must be %s", a.config.ValueType.Describe())
	}
	return fmt.Sprintf("<value-type> of %s means <current-value> must be %s", a.config.ValueType, a.config.ValueType.Describe())
}
