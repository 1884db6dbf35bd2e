package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Planner  PlannerConfig  `mapstructure:"planner"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// PlannerConfig represents leave planning settings
type PlannerConfig struct {
	Year             int `mapstructure:"year"`
	DefaultMaxLeaves int `mapstructure:"default_max_leaves"`
}

// HolidaysConfig represents where the holiday table comes from
type HolidaysConfig struct {
	Source          string `mapstructure:"source"` // "builtin", "file" or "url"
	Path            string `mapstructure:"path"`
	URL             string `mapstructure:"url"`
	Timeout         string `mapstructure:"timeout"`
	FallbackBuiltin bool   `mapstructure:"fallback_builtin"` // use the embedded table when file/url fails
}

// ServerConfig represents the web UI settings
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	ReadTimeout     string `mapstructure:"read_timeout"`
	WriteTimeout    string `mapstructure:"write_timeout"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
	DefaultLang     string `mapstructure:"default_lang"`
}

// LogConfig represents logging settings
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceURL     = "url"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("planner.year", 2025)
	v.SetDefault("planner.default_max_leaves", 14)
	v.SetDefault("holidays.source", SourceBuiltin)
	v.SetDefault("holidays.timeout", "10s")
	v.SetDefault("holidays.fallback_builtin", false)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("server.default_lang", "tr")
	v.SetDefault("log.level", "info")
}

// Load loads configuration from file. A missing default config file is
// not an error; a missing explicit one is.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.leave-planner")
		v.AddConfigPath("/etc/leave-planner")
	}

	// Read environment variables, e.g. LEAVE_PLANNER_PLANNER_YEAR
	v.SetEnvPrefix("LEAVE_PLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate Planner config
	if c.Planner.Year < 1900 || c.Planner.Year > 2200 {
		return fmt.Errorf("planner.year must be between 1900 and 2200, got %d", c.Planner.Year)
	}
	if c.Planner.DefaultMaxLeaves < 1 || c.Planner.DefaultMaxLeaves > 30 {
		return fmt.Errorf("planner.default_max_leaves must be between 1 and 30")
	}

	// Validate Holidays config
	switch c.Holidays.Source {
	case SourceBuiltin:
	case SourceFile:
		if c.Holidays.Path == "" {
			return fmt.Errorf("holidays.path is required for file source")
		}
	case SourceURL:
		if c.Holidays.URL == "" {
			return fmt.Errorf("holidays.url is required for url source")
		}
	default:
		return fmt.Errorf("holidays.source must be 'builtin', 'file' or 'url', got '%s'", c.Holidays.Source)
	}

	// Validate Server config
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	switch c.Server.DefaultLang {
	case "tr", "en":
	default:
		return fmt.Errorf("server.default_lang must be 'tr' or 'en', got '%s'", c.Server.DefaultLang)
	}

	return nil
}

// GetTimeout returns the holiday fetch timeout
func (c *HolidaysConfig) GetTimeout() time.Duration {
	return parseDuration(c.Timeout, 10*time.Second)
}

// GetReadTimeout returns the HTTP read timeout
func (c *ServerConfig) GetReadTimeout() time.Duration {
	return parseDuration(c.ReadTimeout, 10*time.Second)
}

// GetWriteTimeout returns the HTTP write timeout
func (c *ServerConfig) GetWriteTimeout() time.Duration {
	return parseDuration(c.WriteTimeout, 30*time.Second)
}

// GetShutdownTimeout returns how long in-flight requests get on shutdown
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	return parseDuration(c.ShutdownTimeout, 5*time.Second)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Holidays.Path = os.ExpandEnv(c.Holidays.Path)
	c.Holidays.URL = os.ExpandEnv(c.Holidays.URL)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
