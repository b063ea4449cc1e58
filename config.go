package spindle

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Config controls window creation, frame pacing and logging. Start from
// DefaultConfig; the zero value makes a zero-sized window.
type Config struct {
	Window WindowConfig `toml:"window"`
	Loop   LoopConfig   `toml:"loop"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
	// AllowScreensaver leaves the system screensaver enabled while the
	// window runs.
	AllowScreensaver bool `toml:"allow_screensaver"`
}

type LoopConfig struct {
	// SynchronizedPresentation gates drawing on compositor frame
	// callbacks when the session provides them.
	SynchronizedPresentation bool `toml:"synchronized_presentation"`
	// TextInput enables text-input decoding from loop start; it can be
	// toggled at runtime with StartTextInput/StopTextInput.
	TextInput bool `toml:"text_input"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "spindle",
			Width:  1280,
			Height: 720,
		},
		Loop: LoopConfig{
			SynchronizedPresentation: true,
			TextInput:                true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig reads a TOML file over the defaults and applies environment
// overrides: SPINDLE_LOG_LEVEL replaces the log level and a non-zero
// SPINDLE_NO_SYNC disables synchronized presentation.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SPINDLE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("SPINDLE_NO_SYNC"); v != "" && v != "0" {
		c.Loop.SynchronizedPresentation = false
	}
}

// Logger builds the process logger at the configured level; unknown
// levels fall back to info.
func (c Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
