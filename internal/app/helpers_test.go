package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupAppTest creates an App writing its result and its debug log into
// separate buffers.
func setupAppTest(t *testing.T, cfg Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	appConfig, err := NewConfig(cfg)
	require.NoError(t, err, "invalid test configuration")
	appConfig.LogLevel = "debug"

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	testApp := NewApp(out, logs, appConfig, nil)

	t.Cleanup(func() {
		if os.Getenv("STEPPER_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}

// writeCandidates creates a candidate file named name in a per-test directory.
func writeCandidates(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}
