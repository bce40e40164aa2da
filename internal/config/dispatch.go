package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/stepper/internal/ctxlog"
	"github.com/specialistvlad/stepper/internal/fsutil"
)

// Dispatcher picks a Loader by file extension and falls back to a default
// loader for anything it does not recognize.
type Dispatcher struct {
	byExt    map[string]Loader
	fallback Loader
}

// NewDispatcher creates a Dispatcher that uses fallback for unregistered
// extensions.
func NewDispatcher(fallback Loader) *Dispatcher {
	return &Dispatcher{
		byExt:    make(map[string]Loader),
		fallback: fallback,
	}
}

// Register routes files with any of the given extensions (with or without the
// leading dot, matched case-insensitively) to loader.
func (d *Dispatcher) Register(loader Loader, exts ...string) *Dispatcher {
	for _, ext := range exts {
		d.byExt[normalizeExt(ext)] = loader
	}
	return d
}

// Load implements Loader. Missing paths and directories are rejected with
// ErrRead before any loader runs.
func (d *Dispatcher) Load(ctx context.Context, path string) (*Source, error) {
	if err := fsutil.RequireFile(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	ext := normalizeExt(filepath.Ext(path))
	loader, ok := d.byExt[ext]
	if !ok {
		loader = d.fallback
	}
	ctxlog.FromContext(ctx).Debug("Dispatching candidate file.", "path", path, "extension", ext, "registered", ok)
	return loader.Load(ctx, path)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
