package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "ASCIITREE"

type Config struct {
	// HistoryLimit caps the undo stack. Zero means unbounded.
	HistoryLimit int `mapstructure:"history_limit"`

	// Format is the structured output format for CLI commands (text|json|edn|yaml).
	Format string `mapstructure:"format"`
	Pretty bool   `mapstructure:"pretty"`

	Debug    bool   `mapstructure:"debug"`
	DebugLog string `mapstructure:"debug_log"`

	TUI TUIConfig `mapstructure:"tui"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set for TUI affordances ("unicode", "ascii").
	// The canonical tree text is never affected.
	Glyphs string `mapstructure:"glyphs"`
	// Sample seeds an empty session with the demo tree.
	Sample bool `mapstructure:"sample"`
}

// New returns a viper instance with defaults and ASCIITREE_* env binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("history_limit", 0)
	v.SetDefault("format", "text")
	v.SetDefault("pretty", false)
	v.SetDefault("debug", false)
	v.SetDefault("debug_log", "")
	v.SetDefault("tui.glyphs", "unicode")
	v.SetDefault("tui.sample", false)
	return v
}

// DefaultPath is $HOME/.config/asciitree/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "asciitree", "config.yaml"), nil
}

// Load reads path (or the default config file when path is empty) into v
// and decodes the result. A missing default file is not an error; a missing
// explicit file is.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else if def, err := DefaultPath(); err == nil {
		v.AddConfigPath(filepath.Dir(def))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
		case path == "" && errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = "text"
	}
	if c.HistoryLimit < 0 {
		c.HistoryLimit = 0
	}
	c.TUI.Glyphs = strings.ToLower(strings.TrimSpace(c.TUI.Glyphs))
}
