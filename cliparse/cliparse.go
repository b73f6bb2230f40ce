package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-plan/llm"
	"github.com/danielhkuo/quickly-plan/models"
)

type LLMConfig struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	APIKey   string        `yaml:"api_key"`
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
}

type Config struct {
	Port          int       `yaml:"port"`
	DatabaseURL   string    `yaml:"database_url"`
	DatabaseType  string    `yaml:"database_type"`
	LogLevel      string    `yaml:"log_level"`
	BasicAuthUser string    `yaml:"basic_auth_user"`
	BasicAuthPass string    `yaml:"basic_auth_password"`
	LLM           LLMConfig `yaml:"llm"`
}

// Defaults returns the configuration used when nothing else is set
func Defaults() Config {
	return Config{
		Port:         8000,
		DatabaseURL:  "data.db",
		DatabaseType: models.DatabaseSQLite,
		LogLevel:     "info",
		LLM: LLMConfig{
			Provider: "openai",
			Timeout:  60 * time.Second,
		},
	}
}

// ParseFlags builds the configuration from flags, environment and an optional
// YAML file. Precedence: flags > env > file > defaults.
func ParseFlags(args []string) (Config, error) {
	var flags Config
	var configFile string

	fs := flag.NewFlagSet("quickly-plan", flag.ContinueOnError)

	fs.StringVar(&configFile, "c", "", "YAML config file")

	// Network and storage
	fs.IntVar(&flags.Port, "p", 0, "Server port")
	fs.StringVar(&flags.DatabaseURL, "d", "", "Database URL (file path for sqlite)")
	fs.StringVar(&flags.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Language model
	fs.StringVar(&flags.LLM.Provider, "llm-provider", "", "LLM provider (openai, claude, ollama, ...)")
	fs.StringVar(&flags.LLM.Model, "llm-model", "", "LLM model name")
	fs.StringVar(&flags.LLM.BaseURL, "llm-base-url", "", "Override the provider base URL")
	fs.DurationVar(&flags.LLM.Timeout, "llm-timeout", 0, "Timeout for a single model call")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&flags.LLM.APIKey, "llm-api-key", "", "LLM API key (prefer env)")
	fs.StringVar(&flags.BasicAuthUser, "auth-user", "", "HTTP basic auth username")
	fs.StringVar(&flags.BasicAuthPass, "auth-password", "", "HTTP basic auth password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	cfg.overlay(flags)
	cfg.providerKeyFallback()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile merges a YAML config file into cfg. Keys missing from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return errors.New("invalid PORT env variable")
		}
		c.Port = port
	}

	setFromEnv(&c.DatabaseURL, "DATABASE_URL")
	setFromEnv(&c.DatabaseType, "DATABASE_TYPE")
	setFromEnv(&c.LogLevel, "LOG_LEVEL")
	setFromEnv(&c.BasicAuthUser, "BASIC_AUTH_USER")
	setFromEnv(&c.BasicAuthPass, "BASIC_AUTH_PASSWORD")

	setFromEnv(&c.LLM.Provider, "LLM_PROVIDER")
	setFromEnv(&c.LLM.Model, "LLM_MODEL")
	setFromEnv(&c.LLM.BaseURL, "LLM_BASE_URL")

	if timeoutStr := os.Getenv("LLM_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return errors.New("invalid LLM_TIMEOUT env variable")
		}
		c.LLM.Timeout = timeout
	}

	setFromEnv(&c.LLM.APIKey, "LLM_API_KEY")

	return nil
}

// overlay copies every non-zero value from flags into c
func (c *Config) overlay(flags Config) {
	if flags.Port != 0 {
		c.Port = flags.Port
	}
	setIfNotEmpty(&c.DatabaseURL, flags.DatabaseURL)
	setIfNotEmpty(&c.DatabaseType, flags.DatabaseType)
	setIfNotEmpty(&c.LogLevel, flags.LogLevel)
	setIfNotEmpty(&c.BasicAuthUser, flags.BasicAuthUser)
	setIfNotEmpty(&c.BasicAuthPass, flags.BasicAuthPass)
	setIfNotEmpty(&c.LLM.Provider, flags.LLM.Provider)
	setIfNotEmpty(&c.LLM.Model, flags.LLM.Model)
	setIfNotEmpty(&c.LLM.APIKey, flags.LLM.APIKey)
	setIfNotEmpty(&c.LLM.BaseURL, flags.LLM.BaseURL)
	if flags.LLM.Timeout != 0 {
		c.LLM.Timeout = flags.LLM.Timeout
	}
}

// providerKeyFallback reads the provider's own key variable when no key was
// configured any other way
func (c *Config) providerKeyFallback() {
	if c.LLM.APIKey != "" {
		return
	}
	switch c.LLM.Provider {
	case "claude":
		c.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case "openai":
		c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}

// Validate checks values that would otherwise fail much later
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if c.DatabaseType != models.DatabaseSQLite && c.DatabaseType != models.DatabasePostgres {
		return fmt.Errorf("unsupported database type %q (sqlite or postgres)", c.DatabaseType)
	}
	if !llm.IsKnownProvider(c.LLM.Provider) {
		return fmt.Errorf("unknown LLM provider %q", c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("LLM timeout must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if (c.BasicAuthUser == "") != (c.BasicAuthPass == "") {
		return errors.New("basic auth needs both a username and a password")
	}
	return nil
}

// BasicAuthEnabled reports whether both credentials are configured
func (c Config) BasicAuthEnabled() bool {
	return c.BasicAuthUser != "" && c.BasicAuthPass != ""
}

// SlogLevel converts LogLevel into a slog.Level
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
