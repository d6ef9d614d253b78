package cli_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctor(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("doctor")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Doctor")
	assert.Contains(t, stdout, "[ok]  Config file")
	assert.Contains(t, stdout, "Header width")
}

func TestDoctor_JSONReportsInvalidConfig(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.configPath, []byte("watch:\n  refresh_interval: 10ms\n"), 0o600))

	stdout, _, err := env.run("doctor", "--format", "json")
	require.NoError(t, err)

	var result struct {
		AllOK  bool `json:"all_ok"`
		Checks []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))

	assert.False(t, result.AllOK)
	require.NotEmpty(t, result.Checks)
	assert.Equal(t, "Config file", result.Checks[0].Name)
	assert.Equal(t, "fail", result.Checks[0].Status)
}
