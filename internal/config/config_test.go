package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
  host: "0.0.0.0"

analysis:
  default_sigma: 1.5
  ctr_column: "ctr_all"

upload:
  max_file_mb: 10
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 1.5, cfg.Analysis.DefaultSigma)
	assert.Equal(t, "ctr_all", cfg.Analysis.CTRColumn)
	assert.Equal(t, int64(10), cfg.Upload.MaxFileMB)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxFileBytes())
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: {}\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 1.0, cfg.Analysis.DefaultSigma)
	assert.Equal(t, "ctr_link", cfg.Analysis.CTRColumn)
	assert.Equal(t, int64(50), cfg.Upload.MaxFileMB)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [broken"), 0644))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("TRIAGE_DEFAULT_SIGMA", "0.8")
	t.Setenv("TRIAGE_CTR_COLUMN", "ctr_all")
	t.Setenv("TRIAGE_MAX_UPLOAD_MB", "5")

	cfg, err := LoadFromEnv(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 0.8, cfg.Analysis.DefaultSigma)
	assert.Equal(t, "ctr_all", cfg.Analysis.CTRColumn)
	assert.Equal(t, int64(5), cfg.Upload.MaxFileMB)
}
