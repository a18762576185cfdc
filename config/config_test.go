package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.CellWidth)
	assert.Empty(t, cfg.HTTPAddr)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, 5, p.Len())
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{
		EnvCellWidth:   "3",
		EnvPalette:     "black,white",
		EnvAudio:       "false",
		EnvVolume:      "150",
		EnvSampleRate:  "48000",
		EnvHTTPAddr:    " :8080 ",
		EnvLogLevel:    "DEBUG",
		EnvInitialGrid: "[[1]]",
	}))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.CellWidth)
	assert.Equal(t, "black,white", cfg.PaletteSpec)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume)
	assert.Equal(t, 48000, cfg.Audio.SampleRate)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "[[1]]", cfg.InitialGrid)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_Invalid(t *testing.T) {
	for key, val := range map[string]string{
		EnvCellWidth:  "wide",
		EnvAudio:      "maybe",
		EnvVolume:     "loud",
		EnvSampleRate: "-1",
	} {
		cfg := Default()
		assert.Error(t, cfg.applyEnv(envMap(map[string]string{key: val})), key)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"cell width": func(c *Config) { c.CellWidth = 0 },
		"palette":    func(c *Config) { c.PaletteSpec = "black" },
		"log level":  func(c *Config) { c.LogLevel = "chatty" },
		"initial":    func(c *Config) { c.InitialGrid = "[[x]]" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvCellWidth+"=4\n"), 0o600))

	t.Setenv(EnvCellWidth, "")
	os.Unsetenv(EnvCellWidth)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.CellWidth)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
