package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates a file with the given content in a per-test directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestTextLoader_SkipsBlankAndCommentLines(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, "volume", "# presets\n10\n\n  25 \r\n#50\n100\n")

	// --- Act ---
	src, err := NewTextLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, FormatText, src.Format)
	require.Equal(t, path, src.Path)
	require.Equal(t, []Entry{
		{Raw: "10", Pos: 2},
		{Raw: "25", Pos: 4},
		{Raw: "100", Pos: 6},
	}, src.Entries)
	require.Equal(t, []string{"10", "25", "100"}, src.Raw())
}

func TestTextLoader_OnlyComments(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty", "# nothing here\n\n   \n#1\n")

	src, err := NewTextLoader().Load(context.Background(), path)

	require.NoError(t, err)
	require.Empty(t, src.Entries)
}

func TestTextLoader_KeepsUnparsableLinesVerbatim(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bad", "1\nnot-a-number\n")

	src, err := NewTextLoader().Load(context.Background(), path)

	require.NoError(t, err, "numeric validation belongs to the caller")
	require.Equal(t, []string{"1", "not-a-number"}, src.Raw())
	require.Equal(t, path+":2", src.Location(src.Entries[1]))
}

func TestTextLoader_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := NewTextLoader().Load(context.Background(), path)

	require.ErrorIs(t, err, ErrRead)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTextLoader_Directory(t *testing.T) {
	t.Parallel()

	_, err := NewTextLoader().Load(context.Background(), t.TempDir())

	require.ErrorIs(t, err, ErrRead)
}

func TestTextLoader_LongLines(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	longComment := "#" + strings.Repeat("x", 200*1024)
	path := writeFile(t, "long", longComment+"\n3\n"+strings.Repeat(" ", 100*1024)+"4\n")

	// --- Act ---
	src, err := NewTextLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []Entry{{Raw: "3", Pos: 2}, {Raw: "4", Pos: 3}}, src.Entries)
}

func TestTextLoader_LastLineWithoutNewline(t *testing.T) {
	t.Parallel()

	src, err := NewTextLoader().Load(context.Background(), writeFile(t, "steps", "1\n2"))

	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, src.Raw())
}
