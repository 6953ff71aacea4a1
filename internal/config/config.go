// Package config resolves cragcoach settings from flags, the environment, a
// .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/cragcoach/internal/store"
	"github.com/abhisek/cragcoach/internal/submit"
)

// EnvPrefix prefixes every environment variable, e.g. CRAGCOACH_EMAIL.
const EnvPrefix = "CRAGCOACH"

// Setting keys. Nested keys map to env vars with "." replaced by "_".
const (
	KeyConfigFile       = "config"
	KeyDB               = "db"
	KeyEmail            = "email"
	KeyEndpoint         = "endpoint"
	KeyAPIToken         = "api_token"
	KeyLogMode          = "log.mode"
	KeyLogLevel         = "log.level"
	KeyLogFile          = "log.file"
	KeyTimeout          = "timeout"
	KeyRetryMaxAttempts = "retry.max_attempts"
	KeyRetryInitialWait = "retry.initial_wait"
	KeyRetryMaxWait     = "retry.max_wait"
	KeyRetryMultiplier  = "retry.multiplier"
)

// Config holds all application settings.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string

	// Email is the signed-in climber. Empty means unknown.
	Email string

	// Endpoint is the remote answer service. Empty keeps answers local.
	Endpoint string
	APIToken string

	// LogMode is "dev" or "prod"; LogLevel the minimum level.
	LogMode  string
	LogLevel string
	// LogFile receives logs while the terminal UI owns the screen.
	LogFile string

	// Timeout bounds a single answer service request.
	Timeout time.Duration
	Retry   submit.RetryConfig
}

// DefaultConfig returns a Config with sensible defaults. Paths are left empty
// and resolved by Load.
func DefaultConfig() Config {
	return Config{
		LogMode:  "dev",
		LogLevel: "info",
		Timeout:  30 * time.Second,
		Retry:    submit.DefaultRetryConfig(),
	}
}

// LoadDotEnv loads KEY=VALUE pairs from the given .env files (default
// ".env") into the process environment. Variables already set win. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load builds a Config from v. Values already bound into v (flags) take
// precedence over CRAGCOACH_* environment variables, which take precedence
// over the config file and then the defaults.
func Load(v *viper.Viper) (Config, error) {
	def := DefaultConfig()
	v.SetDefault(KeyDB, "")
	v.SetDefault(KeyEmail, "")
	v.SetDefault(KeyEndpoint, "")
	v.SetDefault(KeyAPIToken, "")
	v.SetDefault(KeyLogMode, def.LogMode)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyRetryMaxAttempts, def.Retry.MaxAttempts)
	v.SetDefault(KeyRetryInitialWait, def.Retry.InitialWait)
	v.SetDefault(KeyRetryMaxWait, def.Retry.MaxWait)
	v.SetDefault(KeyRetryMultiplier, def.Retry.Multiplier)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:   v.GetString(KeyDB),
		Email:    strings.TrimSpace(v.GetString(KeyEmail)),
		Endpoint: v.GetString(KeyEndpoint),
		APIToken: v.GetString(KeyAPIToken),
		LogMode:  v.GetString(KeyLogMode),
		LogLevel: v.GetString(KeyLogLevel),
		LogFile:  v.GetString(KeyLogFile),
		Timeout:  v.GetDuration(KeyTimeout),
		Retry: submit.RetryConfig{
			MaxAttempts: v.GetInt(KeyRetryMaxAttempts),
			InitialWait: v.GetDuration(KeyRetryInitialWait),
			MaxWait:     v.GetDuration(KeyRetryMaxWait),
			Multiplier:  v.GetFloat64(KeyRetryMultiplier),
		},
	}

	if err := cfg.resolvePaths(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readConfigFile reads an explicit --config file, or cragcoach.{yaml,json,toml}
// from the config directory or the working directory when present.
func readConfigFile(v *viper.Viper) error {
	if p := v.GetString(KeyConfigFile); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", p, err)
		}
		return nil
	}

	v.SetConfigName("cragcoach")
	if dir, err := ConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// resolvePaths fills DBPath and LogFile when unset and makes sure their
// directories exist.
func (c *Config) resolvePaths() error {
	if c.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		c.DBPath = p
	} else if err := store.EnsureDir(c.DBPath); err != nil {
		return fmt.Errorf("create database dir: %w", err)
	}

	if c.LogFile == "" {
		dir, err := store.DataDir()
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
		c.LogFile = filepath.Join(dir, "cragcoach.log")
	}
	return nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	var errs []error
	switch c.LogMode {
	case "dev", "prod":
	default:
		errs = append(errs, fmt.Errorf("log mode must be dev or prod, got %q", c.LogMode))
	}
	if c.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("retry max attempts must be at least 1, got %d", c.Retry.MaxAttempts))
	}
	if c.Retry.Multiplier < 1 {
		errs = append(errs, fmt.Errorf("retry multiplier must be at least 1, got %g", c.Retry.Multiplier))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.Endpoint != "" && !strings.HasPrefix(c.Endpoint, "http://") && !strings.HasPrefix(c.Endpoint, "https://") {
		errs = append(errs, fmt.Errorf("endpoint must be an http(s) URL, got %q", c.Endpoint))
	}
	return errors.Join(errs...)
}

// ConfigDir returns $XDG_CONFIG_HOME/cragcoach, or ~/.config/cragcoach.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "cragcoach"), nil
}
