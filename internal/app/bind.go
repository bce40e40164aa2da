package app

import (
	"cmp"
	"context"
	"fmt"

	"github.com/specialistvlad/stepper/internal/config"
	"github.com/specialistvlad/stepper/internal/ctxlog"
	"github.com/specialistvlad/stepper/internal/step"
)

// resolveAs runs one resolution with values of type T: parse the current
// value, load and bind the candidates, resolve, and format the result.
func resolveAs[T cmp.Ordered](
	ctx context.Context,
	a *App,
	parse func(string) (T, error),
	format func(T) string,
) (string, error) {
	logger := ctxlog.FromContext(ctx)

	current, err := parse(a.config.CurrentValue)
	if err != nil {
		logger.Debug("Current value rejected.", "value", a.config.CurrentValue, "error", err)
		return "", fmt.Errorf("%w: %s", ErrInvalidCurrentValue, a.currentValueHint())
	}

	src, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return "", err
	}

	candidates, err := bindEntries(src, parse)
	if err != nil {
		return "", fmt.Errorf("%w (expected %s)", err, a.config.ValueType.Describe())
	}
	logger.Info("Candidates loaded.", "path", src.Path, "format", src.Format, "count", len(candidates))

	if len(candidates) == 0 {
		return "", fmt.Errorf("%s: %w", src.Path, step.ErrEmptyCandidates)
	}

	resolved, err := step.Resolve(a.config.Direction, current, candidates)
	if err != nil {
		return "", err
	}
	logger.Info("Value resolved.", "direction", a.config.Direction, "from", format(current), "to", format(resolved))

	return format(resolved), nil
}

// bindEntries parses every raw entry of src. The first failure aborts.
func bindEntries[T any](src *config.Source, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(src.Entries))
	for _, e := range src.Entries {
		v, err := parse(e.Raw)
		if err != nil {
			return nil, fmt.Errorf("%w at %s: %w", ErrConfigParse, src.Location(e), err)
		}
		out = append(out, v)
	}
	return out, nil
}
