// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Database backends
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

const (
	DefaultPort      = 5000
	DefaultSQLiteURL = "todolists.db"
	DefaultLogLevel  = "info"
	DefaultEnvFile   = ".env"
)

type Config struct {
	Port          int    `toml:"port"`
	DatabaseURL   string `toml:"database_url"`
	DatabaseType  string `toml:"database_type"`
	SessionSecret string `toml:"session_secret"`
	LogLevel      string `toml:"log_level"`
	ConfigFile    string `toml:"-"`
	EnvFile       string `toml:"-"`
}

var ErrSessionSecretRequired = errors.New("session secret required (use --session-secret or SESSION_SECRET env)")

// RegisterFlags binds every config flag onto fs. Cobra commands pass their
// persistent flag set here so subcommands share one Config.
func RegisterFlags(fs *pflag.FlagSet, cfg *Config) {
	// Network config (can be CLI args or env)
	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Database URL (file path for sqlite)")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Flash cookie signing secret (prefer env)")

	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", "", "Path to a TOML config file")
	fs.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFile, "Path to a .env file")
}

// ParseFlags parses args and resolves the remaining fields from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("todolists", pflag.ContinueOnError)
	RegisterFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := Resolve(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve fills every field left empty by flags from the environment, then the
// .env file, then the TOML config file, then defaults.
func Resolve(cfg *Config) error {
	if cfg.EnvFile != "" {
		// godotenv never overrides variables that are already set
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if cfg.ConfigFile == "" {
		cfg.ConfigFile = os.Getenv("TODOLISTS_CONFIG")
	}

	if cfg.ConfigFile != "" {
		if err := applyConfigFile(cfg, cfg.ConfigFile); err != nil {
			return err
		}
	}

	// Defaults
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.DatabaseType = strings.ToLower(strings.TrimSpace(cfg.DatabaseType))
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = DatabaseSQLite
	}

	switch cfg.DatabaseType {
	case DatabaseSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultSQLiteURL
		}
	case DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return fmt.Errorf("unknown database type %q (expected sqlite or postgres)", cfg.DatabaseType)
	}

	return nil
}

// RequireSessionSecret reports whether the config can sign flash cookies
func (c Config) RequireSessionSecret() error {
	if c.SessionSecret == "" {
		return ErrSessionSecretRequired
	}
	return nil
}

// applyConfigFile only fills fields that are still empty
func applyConfigFile(cfg *Config, path string) error {
	var file Config
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if cfg.Port == 0 {
		cfg.Port = file.Port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = file.DatabaseURL
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = file.DatabaseType
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = file.SessionSecret
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = file.LogLevel
	}
	return nil
}
