package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/fsnav/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("", false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoad_DefaultPathIsPickedUp(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "fsnav"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fsnav", "config.yaml"), []byte("farewell: Bye\n"), 0o644))

	assert.Equal(t, filepath.Join(dir, "fsnav", "config.yaml"), config.DefaultPath())

	cfg, err := config.Load("", false)
	require.NoError(t, err)
	assert.Equal(t, "Bye", cfg.Farewell)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
root: /srv/data
log_level: debug
banner: false
excluded_extensions: [".avi"]
max_input_size: 128
`)

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", cfg.Root)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.False(t, cfg.Banner)
	assert.Equal(t, []string{".avi"}, cfg.ExcludedExtensions, "lists replace the default")
	assert.Equal(t, 128, cfg.MaxInputSize)
	assert.Equal(t, "Exiting...", cfg.Farewell, "absent keys keep the default")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "root: /from/file\nrender: false\nmax_input_size: 64\n")

	t.Setenv("FSNAV_ROOT", "/from/env")
	t.Setenv("FSNAV_RENDER", "true")
	t.Setenv("FSNAV_MAX_INPUT_SIZE", "2048")
	t.Setenv("FSNAV_EXCLUDED_EXTENSIONS", ".wav, .flac,")
	t.Setenv("FSNAV_UNRELATED", "ignored")

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Root)
	assert.True(t, cfg.Render)
	assert.Equal(t, 2048, cfg.MaxInputSize)
	assert.Equal(t, []string{".wav", ".flac"}, cfg.ExcludedExtensions)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)

	t.Run("explicit file missing", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
		assert.Error(t, err)
	})

	t.Run("implicit file missing", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
		assert.NoError(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "root: [unclosed\n"), true)
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "rooot: /tmp\n"), true)
		assert.ErrorContains(t, err, "rooot")
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "log_level: chatty\n"), true)
		assert.ErrorContains(t, err, "chatty")
	})

	t.Run("bad size from env", func(t *testing.T) {
		t.Setenv("FSNAV_MAX_INPUT_SIZE", "lots")
		_, err := config.Load("", false)
		assert.Error(t, err)
	})
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Root = "/data"

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "root: /data\n")
	assert.NotContains(t, out, "metrics_file")

	var back config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, cfg, back)
}
