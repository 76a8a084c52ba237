// Package config loads denonctl settings from defaults, an optional YAML file,
// DENONCTL_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/r11/denonctl/internal/defaults"
	"github.com/r11/denonctl/internal/validation"
)

type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Loop    LoopConfig    `mapstructure:"loop" yaml:"loop"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-" yaml:"-"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type LoopConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

// MarshalYAML writes the interval as a duration string instead of nanoseconds.
func (c LoopConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Interval string `yaml:"interval"`
	}{Interval: c.Interval.String()}, nil
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level": "logging.level",
	"interval":  "loop.interval",
}

func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: defaults.GetLogLevel(),
		},
		Loop: LoopConfig{
			Interval: defaults.GetInterval(),
		},
	}
}

// Load reads the configuration. An explicit path must exist; without one the
// usual locations are searched and a missing file is not an error. flags may
// be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(defaults.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.denonctl")
		v.AddConfigPath("/etc/denonctl")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if err := validation.ValidateInterval(c.Loop.Interval); err != nil {
		return fmt.Errorf("loop.interval: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("loop.interval", d.Loop.Interval)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}
