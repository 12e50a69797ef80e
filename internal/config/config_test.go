package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registerEnv makes the test restore key on cleanup, then removes it.
func registerEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sensorgrid.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, 2000000, cfg.Row)
	assert.Equal(t, 4000000, cfg.Bound)
	assert.Equal(t, int64(4000000), cfg.Multiplier)
	assert.Equal(t, 1, cfg.Parallel)
	assert.Empty(t, cfg.Reports)
	assert.Equal(t, "auto", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, LogFormatPretty, cfg.LogFormat)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SENSORGRID_ROW", "10")
	t.Setenv("SENSORGRID_BOUND", "20")
	t.Setenv("SENSORGRID_PARALLEL", "4")
	t.Setenv("SENSORGRID_LOG_FORMAT", "json")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Row)
	assert.Equal(t, 20, cfg.Bound)
	assert.Equal(t, 4, cfg.Parallel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dotEnv := writeEnvFile(t, "SENSORGRID_ROW=10\nSENSORGRID_BOUND=20\n")

	t.Setenv("SENSORGRID_BOUND", "30")
	registerEnv(t, "SENSORGRID_ROW")

	cfg, err := Load(dotEnv, "")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Row)
	assert.Equal(t, 30, cfg.Bound)
}

func TestLoad_MissingDotEnvIsSkipped(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvFileOverridesEnvironmentAndDotEnv(t *testing.T) {
	dotEnv := writeEnvFile(t, "SENSORGRID_ROW=7\nSENSORGRID_PARALLEL=3\n")
	envFile := writeEnvFile(t, "SENSORGRID_ROW=10\nSENSORGRID_BOUND=20\n")

	t.Setenv("SENSORGRID_BOUND", "30")
	registerEnv(t, "SENSORGRID_ROW", "SENSORGRID_PARALLEL")

	cfg, err := Load(dotEnv, envFile)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Row)
	assert.Equal(t, 20, cfg.Bound)
	assert.Equal(t, 3, cfg.Parallel)
}

func TestLoad_EnvFileWinsOverShell(t *testing.T) {
	envFile := writeEnvFile(t, "SENSORGRID_ROW=10\n")
	t.Setenv("SENSORGRID_ROW", "5")

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Row)
}

func TestLoad_MissingEnvFileFails(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "typo.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typo.env")
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SENSORGRID_ROW", "ten")

	_, err := Load("", "")
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Bound: 20, Multiplier: 4000000, Parallel: 1, LogFormat: LogFormatPretty}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative bound", func(c *Config) { c.Bound = -1 }},
		{"zero multiplier", func(c *Config) { c.Multiplier = 0 }},
		{"zero parallel", func(c *Config) { c.Parallel = 0 }},
		{"unknown format", func(c *Config) { c.LogFormat = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
