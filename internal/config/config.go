package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "HINTS"

// Config holds the configuration of the hints command
type Config struct {
	// Words lists word-list files; "-" stands for stdin
	Words []string `mapstructure:"words"`
	// Inline holds words given directly on the command line
	Inline []string `mapstructure:"word"`
	// Limit caps the number of hints printed per query, 0 means all
	Limit    int    `mapstructure:"limit"`
	LogLevel string `mapstructure:"log-level"`
}

// Load reads the configuration from defaults, an optional config file, the
// environment and the given flags (later sources win).
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("words", []string{})
	v.SetDefault("word", []string{})
	v.SetDefault("limit", 0)
	v.SetDefault("log-level", zerolog.LevelInfoValue)
}

// bindFlags binds the flags named like config keys; only flags set on the
// command line take precedence over the file and the environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{"words", "word", "limit", "log-level"} {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", key, err)
		}
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("invalid limit: %d", c.Limit)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}
