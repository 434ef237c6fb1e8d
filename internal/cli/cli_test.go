package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/foundry/internal/cli"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"./configs"}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "./configs", cfg.ConfigPath)
	assert.Equal(t, "hcl", cfg.Format)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.HealthcheckPort)
	assert.False(t, cfg.Lazy)
	assert.Empty(t, cfg.Get)
}

func TestParseFlagsOverrideDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{
		"-config", "./configs",
		"-format", "yaml",
		"-log-format", "text",
		"-log-level", "debug",
		"-lazy",
		"-get", "dimension/country",
		"-healthcheck-port", "8080",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Lazy)
	assert.Equal(t, "dimension/country", cfg.Get)
	assert.Equal(t, 8080, cfg.HealthcheckPort)
}

func TestParseShorthandConfigFlag(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := cli.Parse([]string{"-c", "./grid.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "./grid.hcl", cfg.ConfigPath)
}

func TestParseConfigFlagWinsOverPositional(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := cli.Parse([]string{"-config", "./from-flag", "./positional"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "./from-flag", cfg.ConfigPath)
}

func TestParseNoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseHelpFlag(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
}

func TestParseInvalidFormat(t *testing.T) {
	var out bytes.Buffer
	_, _, err := cli.Parse([]string{"-format", "toml", "./configs"}, &out)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid format")
}

func TestParseInvalidLogLevel(t *testing.T) {
	var out bytes.Buffer
	_, _, err := cli.Parse([]string{"-log-level", "loud", "./configs"}, &out)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParseUnknownFlag(t *testing.T) {
	var out bytes.Buffer
	_, _, err := cli.Parse([]string{"-bogus"}, &out)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
