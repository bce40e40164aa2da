// Package tomlconfig provides the TOML implementation of config.Loader. A
// candidate file in this format holds a `values` array:
//
//	values = [0.75, 1.0, 1.25, 1.5, 2.0]
package tomlconfig

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/stepper/internal/config"
	"github.com/specialistvlad/stepper/internal/ctxlog"
)

// Loader is the TOML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML candidate loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Values []any `toml:"values"`
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Source, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("TOML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrRead, err)
	}

	var root fileRoot
	md, err := toml.Decode(string(data), &root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", config.ErrParse, path, err)
	}
	if !md.IsDefined("values") {
		return nil, fmt.Errorf("%w: %s: missing 'values'", config.ErrParse, path)
	}

	src := &config.Source{Path: path, Format: config.FormatTOML}
	for i, v := range root.Values {
		raw, err := scalarText(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: values[%d] %w", config.ErrParse, path, i, err)
		}
		src.Entries = append(src.Entries, config.Entry{Raw: raw, Pos: i + 1})
	}

	logger.Debug("TOML loading complete.", "entries", len(src.Entries), "undecoded_keys", len(md.Undecoded()))
	return src, nil
}

// scalarText renders a decoded TOML value as text for numeric parsing.
func scalarText(v any) (string, error) {
	switch t := v.(type) {
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case string:
		return t, nil
	default:
		return "", fmt.Errorf("must be a number, got %T", v)
	}
}
