package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llfsmgen/llfsmgen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), config.DefaultFile), false, nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Empty(t, cfg.Serve.AllowedOrigins)
	assert.Equal(t, "127.0.0.1:8080", cfg.Serve.Addr)
}

func TestLoad_RequiredMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), true, nil)
	assert.Error(t, err)
}

func TestLoad_YAMLAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llfsmgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
serve:
  addr: ":9000"
vivado:
  sources_dir: sources_2/imported
`), 0o644))

	cfg, err := config.Load(path, true, []string{
		"LLFSMGEN_SERVE_ADDR=127.0.0.1:7000",
		"LLFSMGEN_METRICS_FILE=/tmp/metrics.prom",
		"UNRELATED=1",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:7000", cfg.Serve.Addr)
	assert.Equal(t, "/tmp/metrics.prom", cfg.MetricsFile)
	assert.Equal(t, "sources_2/imported", cfg.Vivado.SourcesDir)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llfsmgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
serve:
  allowed_origins:
    - http://localhost:3000
`), 0o644))

	cfg, err := config.Load(path, true, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Serve.AllowedOrigins)

	cfg, err = config.Load(path, true, []string{"LLFSMGEN_SERVE_ALLOWED_ORIGINS=http://a.test,http://b.test"})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Serve.AllowedOrigins)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llfsmgen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"warn"}`), 0o644))

	cfg, err := config.Load(path, true, nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:8080", cfg.Serve.Addr)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "llfsmgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_levle: debug\n"), 0o644))

	_, err := config.Load(path, true, nil)
	assert.Error(t, err)
}
