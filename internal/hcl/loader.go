package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/stepper/internal/config"
	"github.com/specialistvlad/stepper/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL candidate loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileSchema requires the values attribute and leaves everything else in
// the remaining body, where it is ignored.
var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "values", Required: true},
	},
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Source, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrRead, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", config.ErrParse, path, diags)
	}

	content, _, diags := file.Body.PartialContent(fileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %w", config.ErrParse, path, diags)
	}

	val, diags := content.Attributes["values"].Expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to evaluate 'values' in %s: %w", config.ErrParse, path, diags)
	}

	raw, err := listToStrings(val)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", config.ErrParse, path, err)
	}

	src := &config.Source{Path: path, Format: config.FormatHCL}
	for i, r := range raw {
		src.Entries = append(src.Entries, config.Entry{Raw: r, Pos: i + 1})
	}

	logger.Debug("HCL loading complete.", "entries", len(src.Entries))
	return src, nil
}
