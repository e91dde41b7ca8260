package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.95, cfg.Estimation.ConfLevel)
	assert.Equal(t, 1e-12, cfg.Estimation.SwitchPoint)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FromFile(t *testing.T) {
	configContent := `
estimation:
  conf_level: 0.90
  switch_point: 1e-6
output:
  format: json
logging:
  level: debug
  pretty: true
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "blindex.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 0.90, cfg.Estimation.ConfLevel)
	assert.Equal(t, 1e-6, cfg.Estimation.SwitchPoint)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BLINDEX_CONF_LEVEL", "0.99")
	t.Setenv("BLINDEX_OUTPUT_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.99, cfg.Estimation.ConfLevel)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("BLINDEX_CONF_LEVEL", "not-a-number")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BLINDEX_CONF_LEVEL")
}

func TestLoad_RejectsOutOfRange(t *testing.T) {
	t.Setenv("BLINDEX_CONF_LEVEL", "1.5")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conf_level")
}

func TestLoad_RejectsUnknownFormat(t *testing.T) {
	t.Setenv("BLINDEX_OUTPUT_FORMAT", "xml")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/blindex.yaml")
	require.Error(t, err)
}
