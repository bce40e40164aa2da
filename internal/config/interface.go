package config

import "context"

// Loader is the interface for a format-specific candidate file loader.
type Loader interface {
	// Load reads the file at path and returns its candidate entries as raw
	// text, leaving numeric interpretation to the caller.
	Load(ctx context.Context, path string) (*Source, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) (*Source, error)

// Load calls f(ctx, path).
func (f LoaderFunc) Load(ctx context.Context, path string) (*Source, error) {
	return f(ctx, path)
}
