package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/longkey1/notiongo/notion"
)

const (
	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "NOTIONGO"

	// ConfigFileName is the name of the config file
	ConfigFileName = "config"
	// ConfigFileType is the type of the config file
	ConfigFileType = "toml"
)

// Config holds the application configuration
type Config struct {
	Token         string `mapstructure:"token"`
	BaseURL       string `mapstructure:"base_url"`
	NotionVersion string `mapstructure:"notion_version"`

	RateLimit         bool    `mapstructure:"rate_limit"`
	RateLimitStrategy string  `mapstructure:"rate_limit_strategy"`
	MaxRetries        int     `mapstructure:"max_retries"`
	BaseDelayMs       int     `mapstructure:"base_delay_ms"`
	MaxDelayMs        int     `mapstructure:"max_delay_ms"`
	JitterFactor      float64 `mapstructure:"jitter_factor"`
	RespectRetryAfter bool    `mapstructure:"respect_retry_after"`

	LogLevel string `mapstructure:"log_level"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	setDefaults(v)

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, fall back to env and defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// NOTION_TOKEN works as a fallback so the CLI plays nice with other
	// Notion tooling sharing one environment.
	if cfg.Token == "" {
		cfg.Token = os.Getenv("NOTION_TOKEN")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	retry := notion.DefaultRetryConfig()
	v.SetDefault("rate_limit", true)
	v.SetDefault("rate_limit_strategy", string(notion.StrategyBalanced))
	v.SetDefault("max_retries", retry.MaxRetries)
	v.SetDefault("base_delay_ms", int(retry.BaseDelay/time.Millisecond))
	v.SetDefault("max_delay_ms", int(retry.MaxDelay/time.Millisecond))
	v.SetDefault("jitter_factor", retry.JitterFactor)
	v.SetDefault("respect_retry_after", retry.RespectRetryAfter)
	v.SetDefault("log_level", "warn")
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "notiongo"), nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("token is required. Set NOTIONGO_TOKEN/NOTION_TOKEN or configure in ~/.config/notiongo/config.toml")
	}
	return nil
}

// ClientOptions maps the configuration onto client options.
func (c *Config) ClientOptions() []notion.Option {
	opts := []notion.Option{
		notion.WithLogger(c.Logger()),
		notion.WithRetry(notion.RetryConfig{
			MaxRetries:        c.MaxRetries,
			BaseDelay:         time.Duration(c.BaseDelayMs) * time.Millisecond,
			MaxDelay:          time.Duration(c.MaxDelayMs) * time.Millisecond,
			JitterFactor:      c.JitterFactor,
			RespectRetryAfter: c.RespectRetryAfter,
		}),
	}

	if c.RateLimit {
		opts = append(opts, notion.WithRateLimit(notion.RateLimitStrategy(c.RateLimitStrategy)))
	} else {
		opts = append(opts, notion.WithoutRateLimit())
	}
	if c.BaseURL != "" {
		opts = append(opts, notion.WithBaseURL(c.BaseURL))
	}
	if c.NotionVersion != "" {
		opts = append(opts, notion.WithNotionVersion(c.NotionVersion))
	}
	return opts
}

// NewClient builds a client from the configuration.
func (c *Config) NewClient() *notion.Client {
	return notion.NewClient(c.Token, c.ClientOptions()...)
}

// Logger returns a stderr logger honoring the configured level.
func (c *Config) Logger() *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
