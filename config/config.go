package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigWordList    = "word-list"
	ConfigDebug       = "debug"
	ConfigMinHandSize = "min-hand-size"
	ConfigMaxHandSize = "max-hand-size"
	ConfigSeed        = "seed"
	ConfigHistoryFile = "history-file"
	ConfigConfigFile  = "config-file"
)

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with every default set and nothing read from
// flags, the environment, or a file.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigWordList, "./words.txt")
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigMinHandSize, 5)
	c.SetDefault(ConfigMaxHandSize, 10)
	c.SetDefault(ConfigSeed, "")
	c.SetDefault(ConfigHistoryFile, "/tmp/wordhand_readline.tmp")
	c.SetDefault(ConfigConfigFile, "")
}

// Load reads the configuration from command line args, WORDHAND_* environment
// variables and an optional YAML config file, in that order of precedence.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("wordhand", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String(ConfigWordList, "./words.txt", "file with one valid word per line")
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.Int(ConfigMinHandSize, 5, "smallest hand to deal")
	fs.Int(ConfigMaxHandSize, 10, "deal hands smaller than this")
	fs.String(ConfigSeed, "", "hex seed for reproducible hands; random if empty")
	fs.String(ConfigHistoryFile, "/tmp/wordhand_readline.tmp", "readline history file")
	fs.String(ConfigConfigFile, "", "optional YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("wordhand")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cfgFile := c.GetString(ConfigConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return c.Validate()
}

// Validate checks that the hand size range makes sense and the seed parses.
func (c *Config) Validate() error {
	minSize := c.GetInt(ConfigMinHandSize)
	maxSize := c.GetInt(ConfigMaxHandSize)
	if minSize < 0 {
		return errors.New("min-hand-size must not be negative")
	}
	if maxSize <= minSize {
		return fmt.Errorf("max-hand-size (%d) must be greater than min-hand-size (%d)",
			maxSize, minSize)
	}
	if _, err := c.Seed(); err != nil {
		return err
	}
	return nil
}

// Seed returns the decoded seed, or nil if none is configured.
func (c *Config) Seed() ([]byte, error) {
	s := c.GetString(ConfigSeed)
	if s == "" {
		return nil, nil
	}
	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("seed must be hex: %w", err)
	}
	return seed, nil
}

// AdjustRelativePaths resolves a relative word list path against basepath
// when it does not exist relative to the working directory.
func (c *Config) AdjustRelativePaths(basepath string) {
	p := c.GetString(ConfigWordList)
	if p == "" || filepath.IsAbs(p) {
		return
	}
	if _, err := os.Stat(p); err == nil {
		return
	}
	adjusted := filepath.Join(basepath, p)
	log.Debug().Str("from", p).Str("to", adjusted).Msg("adjusted word list path")
	c.Set(ConfigWordList, adjusted)
}

// SanitizedSettings returns the settings for logging, with the seed hidden.
func (c *Config) SanitizedSettings() map[string]any {
	all := c.AllSettings()
	if s, ok := all[ConfigSeed].(string); ok && s != "" {
		all[ConfigSeed] = "<set>"
	}
	return all
}
