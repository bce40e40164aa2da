package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/stepper/internal/ctxlog"
)

// commentPrefix marks a line that carries no candidate value.
const commentPrefix = "#"

// TextLoader reads candidate files with one value per line. Blank lines and
// lines starting with '#' are skipped. Surrounding whitespace, including the
// '\r' of CRLF line endings, is trimmed.
type TextLoader struct{}

// NewTextLoader creates a plain-text candidate loader.
func NewTextLoader() *TextLoader {
	return &TextLoader{}
}

// Load implements Loader.
func (l *TextLoader) Load(ctx context.Context, path string) (*Source, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Text loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	src := &Source{Path: path, Format: FormatText}
	lineNo := 0
	skipped := 0
	// The whole file is in memory, so lines of any length are fine.
	for raw := range strings.Lines(string(data)) {
		lineNo++
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			skipped++
			continue
		}
		src.Entries = append(src.Entries, Entry{Raw: line, Pos: lineNo})
	}

	logger.Debug("Text loading complete.", "entries", len(src.Entries), "skipped_lines", skipped)
	return src, nil
}
