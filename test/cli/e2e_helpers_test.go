package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/safedep/bandview/cli"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t          *testing.T
	tmpDir     string
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, "")
}

func newTestEnvWithConfig(t *testing.T, configYAML string) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if configYAML == "" {
		configYAML = `display:
  colors: never
  units: decimal
watch:
  refresh_interval: 1s
`
	}

	err := os.WriteFile(configPath, []byte(configYAML), 0o600)
	require.NoError(t, err)

	return &testEnv{
		t:          t,
		tmpDir:     tmpDir,
		configPath: configPath,
	}
}

func (env *testEnv) run(args ...string) (stdout, stderr string, err error) {
	env.t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)

	fullArgs := append([]string{"--config", env.configPath, "--no-color"}, args...)
	rootCmd.SetArgs(fullArgs)
	err = rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}
