package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/stepper/internal/config"
	"github.com/stretchr/testify/require"
)

func writeHCL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "steps.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeHCL(t, `
		# brightness presets
		description = "backlight"
		values = [10, 2.5, 100, 0.1, "40"]

		meta {
			owner = "me"
		}
	`)

	// --- Act ---
	src, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, config.FormatHCL, src.Format)
	require.Equal(t, path, src.Path)
	require.Equal(t, []string{"10", "2.5", "100", "0.1", "40"}, src.Raw())
	require.Equal(t, 1, src.Entries[0].Pos)
	require.Equal(t, 5, src.Entries[4].Pos)
}

func TestLoader_EmptyList(t *testing.T) {
	t.Parallel()

	src, err := NewLoader().Load(context.Background(), writeHCL(t, "values = []\n"))

	require.NoError(t, err)
	require.Empty(t, src.Entries)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "syntax error",
			content: "values = [1, 2\n",
			wantMsg: "failed to parse HCL file",
		},
		{
			name:    "missing values attribute",
			content: "other = [1]\n",
			wantMsg: "Missing required argument",
		},
		{
			name:    "values declared twice",
			content: "values = [1]\nvalues = [2]\n",
			wantMsg: "Attribute redefined",
		},
		{
			name:    "values is not a list",
			content: "values = 5\n",
			wantMsg: "'values' must be a list",
		},
		{
			name:    "element is a bool",
			content: "values = [1, true]\n",
			wantMsg: "values[1] must be a number",
		},
		{
			name:    "element is null",
			content: "values = [null]\n",
			wantMsg: "values[0] must not be null",
		},
		{
			name:    "values references a variable",
			content: "values = [var.x]\n",
			wantMsg: "failed to evaluate 'values'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewLoader().Load(context.Background(), writeHCL(t, tc.content))

			require.ErrorIs(t, err, config.ErrParse)
			require.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))

	require.ErrorIs(t, err, config.ErrRead)
}

func TestLoader_MissingValuesIsReportedAsDecodeError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeHCL(t, "description = \"no list here\"\n")

	// --- Act ---
	_, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.ErrorIs(t, err, config.ErrParse)
	require.Contains(t, err.Error(), "failed to decode HCL file")
	require.Contains(t, err.Error(), "Missing required argument")
	require.NotContains(t, err.Error(), "must not be null")
}
