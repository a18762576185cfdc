// Package config loads runtime settings from an optional .env file and
// GRIDPAINT_* environment variables. Command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gridpaint/audio"
	"github.com/lixenwraith/gridpaint/grid"
)

// Environment variable names
const (
	EnvCellWidth   = "GRIDPAINT_CELL_WIDTH"
	EnvPalette     = "GRIDPAINT_PALETTE"
	EnvAudio       = "GRIDPAINT_AUDIO_ENABLED"
	EnvVolume      = "GRIDPAINT_MASTER_VOLUME"
	EnvSampleRate  = "GRIDPAINT_SAMPLE_RATE"
	EnvHTTPAddr    = "GRIDPAINT_HTTP_ADDR"
	EnvLogFile     = "GRIDPAINT_LOG_FILE"
	EnvLogLevel    = "GRIDPAINT_LOG_LEVEL"
	EnvInitialGrid = "GRIDPAINT_INITIAL_GRID"
)

// DefaultPaletteSpec mirrors grid.DefaultPalette
const DefaultPaletteSpec = "black,white,blue,red,green"

// Config is the resolved runtime configuration
type Config struct {
	CellWidth   int
	PaletteSpec string
	Audio       audio.Config
	HTTPAddr    string // empty disables the HTTP mirror
	LogFile     string // empty discards logs; the terminal owns stdout
	LogLevel    string
	InitialGrid string // JSON imported at startup
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		CellWidth:   2,
		PaletteSpec: DefaultPaletteSpec,
		Audio:       audio.DefaultConfig(),
		LogLevel:    "info",
	}
}

// Load reads envFile (ignored when missing) and the environment on top of
// the defaults
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvCellWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvCellWidth, err)
		}
		c.CellWidth = n
	}
	if v := getenv(EnvPalette); v != "" {
		c.PaletteSpec = v
	}
	if v := getenv(EnvAudio); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvAudio, err)
		}
		c.Audio.Enabled = b
	}
	if v := getenv(EnvVolume); v != "" {
		// 0-100 converted to 0.0-1.0
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvVolume, err)
		}
		c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
	}
	if v := getenv(EnvSampleRate); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("config: %s: invalid sample rate %q", EnvSampleRate, v)
		}
		c.Audio.SampleRate = n
	}
	if v, ok := lookup(getenv, EnvHTTPAddr); ok {
		c.HTTPAddr = v
	}
	if v, ok := lookup(getenv, EnvLogFile); ok {
		c.LogFile = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := getenv(EnvInitialGrid); v != "" {
		c.InitialGrid = v
	}
	return nil
}

func lookup(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	return strings.TrimSpace(v), v != ""
}

// Palette parses PaletteSpec
func (c *Config) Palette() (grid.Palette, error) {
	return grid.ParsePalette(c.PaletteSpec)
}

// Level parses LogLevel
func (c *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// Validate rejects settings the program cannot run with
func (c *Config) Validate() error {
	if c.CellWidth < 1 || c.CellWidth > 8 {
		return fmt.Errorf("config: cell width %d out of range [1,8]", c.CellWidth)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.InitialGrid != "" {
		if _, err := grid.ParseText([]byte(c.InitialGrid)); err != nil {
			return fmt.Errorf("config: initial grid: %w", err)
		}
	}
	return nil
}
