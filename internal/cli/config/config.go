// Package config loads MiniLang's CLI configuration: REPL prompts,
// history file location, and logging options, layered flags > env >
// config file > built-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds MiniLang's runtime configuration.
type Config struct {
	REPL REPLConfig `mapstructure:"repl"`
	Log  LogConfig  `mapstructure:"log"`

	// NoColor disables ANSI color in diagnostics and REPL output.
	NoColor bool `mapstructure:"no_color"`
}

// REPLConfig configures the interactive session.
type REPLConfig struct {
	Prompt             string `mapstructure:"prompt"`
	ContinuationPrompt string `mapstructure:"continuation_prompt"`
	HistoryFile        string `mapstructure:"history_file"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads .minilang.yaml (searched in the current directory, then the
// user's home directory), overlays MINILANG_*-prefixed environment
// variables, and returns the resulting Config. A missing config file is
// not an error: built-in defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("repl.prompt", "ml> ")
	v.SetDefault("repl.continuation_prompt", "... ")
	v.SetDefault("repl.history_file", defaultHistoryFile())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("no_color", false)

	v.SetConfigName(".minilang")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("MINILANG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".minilang_history"
	}
	return home + "/.minilang_history"
}
