// Package yamlconfig provides the YAML implementation of config.Loader. A
// candidate file in this format holds a `values` sequence of scalars:
//
//	values: [30, 50, 70, 100]
package yamlconfig

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/stepper/internal/config"
	"github.com/specialistvlad/stepper/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML candidate loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot keeps values as a raw node so element tags and lines survive
// decoding. A zero Kind means the key was absent.
type fileRoot struct {
	Values yaml.Node `yaml:"values"`
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Source, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrRead, err)
	}

	var root fileRoot
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", config.ErrParse, path, err)
	}
	if root.Values.Kind == 0 {
		return nil, fmt.Errorf("%w: %s: missing 'values'", config.ErrParse, path)
	}
	if root.Values.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: %s:%d: 'values' must be a sequence", config.ErrParse, path, root.Values.Line)
	}

	src := &config.Source{Path: path, Format: config.FormatYAML}
	for i, node := range root.Values.Content {
		if err := checkScalar(node); err != nil {
			return nil, fmt.Errorf("%w: %s:%d: values[%d] %w", config.ErrParse, path, node.Line, i, err)
		}
		src.Entries = append(src.Entries, config.Entry{Raw: node.Value, Pos: i + 1})
	}

	logger.Debug("YAML loading complete.", "entries", len(src.Entries))
	return src, nil
}

// checkScalar accepts numbers and strings; anything else cannot be a
// candidate value.
func checkScalar(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("must be a scalar")
	}
	switch node.ShortTag() {
	case "!!int", "!!float", "!!str":
		return nil
	default:
		return fmt.Errorf("must be a number, got %s", node.ShortTag())
	}
}
