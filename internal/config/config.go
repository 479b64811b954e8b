// Package config loads the screener configuration from a file, the environment
// and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/candidate-screener/internal/llm"
)

// EnvPrefix prefixes every environment variable the screener reads
const EnvPrefix = "SCREENER"

// Config is the full screener configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Server     ServerConfig     `mapstructure:"server"`
	RateLimit  RateLimitConfig  `mapstructure:"rate-limit"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       JWTConfig        `mapstructure:"auth"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Screening  ScreeningConfig  `mapstructure:"screening"`
}

// LogConfig selects the log encoder and level
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// VocabularyConfig points at an optional custom vocabulary file
type VocabularyConfig struct {
	File string `mapstructure:"file" validate:"omitempty,file"`
}

// ServerConfig holds HTTP server settings. SessionTTL bounds how long idle interview
// sessions are kept; zero uses the interview default.
type ServerConfig struct {
	Port         int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout" validate:"min=0"`
	WriteTimeout time.Duration `mapstructure:"write-timeout" validate:"min=0"`
	SessionTTL   time.Duration `mapstructure:"session-ttl" validate:"min=0"`
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	Enabled           bool     `mapstructure:"enabled"`
	RequestsPerMinute int      `mapstructure:"requests-per-minute" validate:"min=1"`
	Burst             int      `mapstructure:"burst" validate:"min=0"`
	Whitelist         []string `mapstructure:"whitelist" validate:"dive,ip"`
}

// DatabaseConfig enables persistence when URL is set
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// LLMConfig selects the optional summary provider
type LLMConfig struct {
	Provider string `mapstructure:"provider" validate:"omitempty,oneof=none fake gemini"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api-key"`
}

// ScreeningConfig tunes the screening engine
type ScreeningConfig struct {
	Workers int `mapstructure:"workers" validate:"min=0,max=256"`
}

var validate = validator.New()

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read-timeout", 30*time.Second)
	v.SetDefault("server.write-timeout", 60*time.Second)
	v.SetDefault("server.session-ttl", 24*time.Hour)
	v.SetDefault("rate-limit.enabled", true)
	v.SetDefault("rate-limit.requests-per-minute", 120)
	v.SetDefault("rate-limit.burst", 20)
	v.SetDefault("auth.expiration-hours", 24)
	v.SetDefault("llm.provider", string(llm.ProviderNone))
	v.SetDefault("screening.workers", 0)
}

// New returns a viper instance with defaults and environment binding. Keys map to
// SCREENER_ variables with dots and dashes replaced by underscores, e.g.
// SCREENER_RATE_LIMIT_BURST.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (yaml or json, by extension) when it is not empty and returns the
// validated configuration.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the configuration held by v
func FromViper(v *viper.Viper) (*Config, error) {
	// AutomaticEnv only applies to keys viper already knows about
	for _, key := range []string{"vocabulary.file", "database.url", "auth.jwt-secret", "llm.model", "llm.api-key", "rate-limit.whitelist"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and cross-field rules
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("config error: %s failed %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	if c.Auth.Secret != "" {
		if err := c.Auth.normalize(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.LLM.Provider == string(llm.ProviderGemini) && c.LLM.APIKey == "" {
		return fmt.Errorf("config error: llm.api-key is required for provider %q", c.LLM.Provider)
	}
	return nil
}

// LLMClientConfig converts the llm section into an llm.Config. An empty model keeps
// the provider defaults.
func (c *Config) LLMClientConfig() (*llm.Config, error) {
	provider, err := llm.ParseProvider(c.LLM.Provider)
	if err != nil {
		return nil, err
	}
	cfg := llm.DefaultConfig()
	cfg.Provider = provider
	if c.LLM.Model != "" {
		cfg = cfg.WithModel(llm.TierLite, c.LLM.Model).WithModel(llm.TierStandard, c.LLM.Model)
	}
	return cfg, nil
}
