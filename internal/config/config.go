// Package config loads pbc30 settings through viper: defaults, an optional
// pbc30.yaml, PBC30_* environment variables and bound CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Makepad-fr/pbc30/internal/ui"
)

// Config represents the complete pbc30 configuration
type Config struct {
	Data  DataConfig  `mapstructure:"data"`
	Page  PageConfig  `mapstructure:"page"`
	Board BoardConfig `mapstructure:"board"`
	TUI   TUIConfig   `mapstructure:"tui"`
	Log   LogConfig   `mapstructure:"log"`
}

// DataConfig locates the challenge collection
type DataConfig struct {
	// Path is a JSON or YAML file; empty means the embedded data set
	Path string `mapstructure:"path"`
}

// PageConfig is the chrome around the board
type PageConfig struct {
	Title     string `mapstructure:"title"`
	TitleURL  string `mapstructure:"title_url"`
	Subtitle  string `mapstructure:"subtitle"`
	Credit    string `mapstructure:"credit"`
	CreditURL string `mapstructure:"credit_url"`
}

// BoardConfig controls terminal board output
type BoardConfig struct {
	// Columns is the number of cards per row (1-12)
	Columns int `mapstructure:"columns"`
	// Theme is one of "classic", "neon", "mono"
	Theme string `mapstructure:"theme"`
	// Group prints one section per status
	Group bool `mapstructure:"group"`
}

// TUIConfig controls the interactive board
type TUIConfig struct {
	// Watch reloads the data file when it changes
	Watch bool `mapstructure:"watch"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `mapstructure:"level"`
	// File is an output path; empty means stderr
	File string `mapstructure:"file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Page: PageConfig{
			Title:     "Mert Bozkir",
			TitleURL:  "https://www.instagram.com/mert_xai",
			Subtitle:  "#PBC30 - Personal Brand Building Challenge",
			Credit:    "Jim Tang",
			CreditURL: "https://www.instagram.com/jimruitang",
		},
		Board: BoardConfig{
			Columns: 6,
			Theme:   "classic",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("data.path", d.Data.Path)

	v.SetDefault("page.title", d.Page.Title)
	v.SetDefault("page.title_url", d.Page.TitleURL)
	v.SetDefault("page.subtitle", d.Page.Subtitle)
	v.SetDefault("page.credit", d.Page.Credit)
	v.SetDefault("page.credit_url", d.Page.CreditURL)

	v.SetDefault("board.columns", d.Board.Columns)
	v.SetDefault("board.theme", d.Board.Theme)
	v.SetDefault("board.group", d.Board.Group)

	v.SetDefault("tui.watch", d.TUI.Watch)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Init prepares v: defaults, config file search paths and environment.
// An explicit cfgFile must exist; the searched file is optional.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("pbc30")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PBC30")
	// PBC30_BOARD_COLUMNS for board.columns
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// Dir returns the user's pbc30 config directory
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pbc30")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "pbc30")
}

// UIPage converts the page settings for the terminal renderer.
func (c *Config) UIPage() ui.Page {
	return ui.Page{
		Title:     c.Page.Title,
		TitleURL:  c.Page.TitleURL,
		Subtitle:  c.Page.Subtitle,
		Credit:    c.Page.Credit,
		CreditURL: c.Page.CreditURL,
	}
}
