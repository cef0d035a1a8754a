// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Run configuration resolved from flags, HIOTHREAD_* environment variables
// and an optional YAML file.

package control

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hioload-thread/api"
)

// EnvPrefix is the prefix of environment variables bound to config keys.
const EnvPrefix = "HIOTHREAD"

// Config keys, shared by flags, environment and config files.
const (
	KeyConfigFile   = "config"
	KeyLogLevel     = "log-level"
	KeyLogFormat    = "log-format"
	KeyCPU          = "cpu"
	KeyJoin         = "join"
	KeyDebug        = "debug"
	KeyMetrics      = "metrics"
	KeyEventHistory = "event-history"
)

// Config holds parameters immutable per run.
type Config struct {
	LogLevel     string `mapstructure:"log-level"`     // zap level name
	LogFormat    string `mapstructure:"log-format"`    // console or json
	CPU          int    `mapstructure:"cpu"`           // logical CPU for the worker, -1 for none
	Join         bool   `mapstructure:"join"`          // join instead of detach
	Debug        bool   `mapstructure:"debug"`         // dump debug probes at exit
	Metrics      bool   `mapstructure:"metrics"`       // dump lifecycle metrics at exit
	EventHistory int    `mapstructure:"event-history"` // transitions kept in memory
}

// DefaultConfig returns a configuration that reproduces the plain
// detach-then-check sequence with quiet logging.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		LogFormat:    "console",
		CPU:          -1,
		Join:         false,
		Debug:        false,
		Metrics:      false,
		EventHistory: 16,
	}
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyCPU, d.CPU)
	v.SetDefault(KeyJoin, d.Join)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyMetrics, d.Metrics)
	v.SetDefault(KeyEventHistory, d.EventHistory)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the optional config file named by KeyConfigFile and
// decodes the merged settings.
func LoadConfig(v *viper.Viper) (*Config, error) {
	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return invalid(KeyLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return invalid(KeyLogFormat, c.LogFormat)
	}
	if c.CPU < -1 {
		return invalid(KeyCPU, c.CPU)
	}
	if c.EventHistory < 0 {
		return invalid(KeyEventHistory, c.EventHistory)
	}
	return nil
}

func invalid(key string, value any) error {
	return api.NewError(api.ErrCodeInvalidArgument, "invalid configuration value").
		WithContext("key", key).
		WithContext("value", value)
}
