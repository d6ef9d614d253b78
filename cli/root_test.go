package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupInternalLogger_Verbose(t *testing.T) {
	dir := t.TempDir()
	globalFlags = GlobalFlags{ConfigPath: filepath.Join(dir, "config.yaml")}
	t.Cleanup(func() { globalFlags = GlobalFlags{} })

	t.Setenv("APP_LOG_LEVEL", "")
	t.Setenv("APP_LOG_FILE", "")
	t.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "")

	setupInternalLogger(true)

	assert.Equal(t, "true", os.Getenv("APP_LOG_SKIP_STDOUT_LOGGER"))
	assert.Equal(t, "debug", os.Getenv("APP_LOG_LEVEL"))
	assert.Equal(t, filepath.Join(dir, "bandview.log"), os.Getenv("APP_LOG_FILE"))
}

func TestSetupInternalLogger_VerboseKeepsExplicitSettings(t *testing.T) {
	dir := t.TempDir()
	globalFlags = GlobalFlags{ConfigPath: filepath.Join(dir, "config.yaml")}
	t.Cleanup(func() { globalFlags = GlobalFlags{} })

	custom := filepath.Join(dir, "custom.log")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_LOG_FILE", custom)

	setupInternalLogger(true)

	assert.Equal(t, "warn", os.Getenv("APP_LOG_LEVEL"))
	assert.Equal(t, custom, os.Getenv("APP_LOG_FILE"))
}

func TestSetupInternalLogger_Quiet(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "")
	t.Setenv("APP_LOG_FILE", "")

	setupInternalLogger(false)

	assert.Empty(t, os.Getenv("APP_LOG_LEVEL"))
	assert.Empty(t, os.Getenv("APP_LOG_FILE"))
}
