package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load reads process environment, so these tests use t.Setenv and cannot run
// in parallel.

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvName, "")
	t.Setenv(EnvVerbose, "")
	t.Setenv(EnvFile, "")
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "texteditor.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "local", cfg.Env)
	assert.False(t, cfg.Verbose)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "env: staging\nverbose: true\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Config{Env: "staging", Verbose: true}, cfg)
}

func TestLoad_FileFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFile, writeFile(t, "env: ci\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ci", cfg.Env)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "env: staging\nverbose: false\n")
	t.Setenv(EnvName, "prod")
	t.Setenv(EnvVerbose, "true")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Config{Env: "prod", Verbose: true}, cfg)
}

func TestLoad_BadBoolKeepsPrevious(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvVerbose, "loud")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "env: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml unmarshal")

	_, err = Load(writeFile(t, "env: \"\"\n"))
	require.EqualError(t, err, "config: env must not be empty")
}
