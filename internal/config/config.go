// Package config loads Momentum's runtime settings from an optional .env file,
// an optional YAML file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/akyairhashvil/momentum/internal/util"
)

// Config holds every setting the server reads at startup.
type Config struct {
	DatabaseURL       string        `koanf:"database_url" json:"databaseUrl"`
	Host              string        `koanf:"host" json:"host"`
	Port              int           `koanf:"port" json:"port"`
	Env               string        `koanf:"node_env" json:"env"`
	DevSeedToken      Secret        `koanf:"dev_seed_token" json:"devSeedToken"`
	LogLevel          string        `koanf:"log_level" json:"logLevel"`
	SessionTTL        time.Duration `koanf:"session_ttl" json:"sessionTtl"`
	OpenAIAPIKey      Secret        `koanf:"openai_api_key" json:"openaiApiKey"`
	OpenAIBaseURL     string        `koanf:"openai_base_url" json:"openaiBaseUrl"`
	AIModel           string        `koanf:"ai_model" json:"aiModel"`
	ChatRatePerMinute int           `koanf:"chat_rate_per_minute" json:"chatRatePerMinute"`
	DBTimeout         time.Duration `koanf:"db_timeout" json:"dbTimeout"`
}

// envKeys are the environment variables Load consults; anything else is ignored.
var envKeys = map[string]bool{
	"DATABASE_URL":         true,
	"HOST":                 true,
	"PORT":                 true,
	"NODE_ENV":             true,
	"DEV_SEED_TOKEN":       true,
	"LOG_LEVEL":            true,
	"SESSION_TTL":          true,
	"OPENAI_API_KEY":       true,
	"OPENAI_BASE_URL":      true,
	"AI_MODEL":             true,
	"CHAT_RATE_PER_MINUTE": true,
	"DB_TIMEOUT":           true,
}

// Options selects the files Load reads. Empty fields are skipped.
type Options struct {
	ConfigFile string
	EnvFile    string
}

// Load reads configuration with precedence env > YAML file > defaults.
//
// The env file, when present, only fills variables that are not already set
// in the process environment.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	k := koanf.New(".")
	if opts.ConfigFile != "" {
		content, err := readConfigFile(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", opts.ConfigFile, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		if !envKeys[s] {
			return ""
		}
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}
	return io.ReadAll(f)
}

func applyDefaults(cfg *Config) {
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "sqlite://" + filepath.Join(util.DataDir(AppName), DBFileName)
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Env == "" {
		cfg.Env = EnvDevelopment
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.AIModel == "" {
		cfg.AIModel = DefaultAIModel
	}
	if cfg.ChatRatePerMinute == 0 {
		cfg.ChatRatePerMinute = DefaultChatRatePerMinute
	}
	if cfg.DBTimeout == 0 {
		cfg.DBTimeout = DefaultDBTimeout
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", c.Port))
	}
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		errs = append(errs, fmt.Errorf("NODE_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	if c.SessionTTL < time.Minute {
		errs = append(errs, fmt.Errorf("session TTL must be at least 1m, got %s", c.SessionTTL))
	}
	if c.ChatRatePerMinute < 0 {
		errs = append(errs, fmt.Errorf("chat rate must not be negative"))
	}
	if c.DBTimeout < 0 {
		errs = append(errs, fmt.Errorf("database timeout must not be negative"))
	}
	if c.OpenAIBaseURL != "" {
		if u, err := url.Parse(c.OpenAIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("invalid OpenAI base URL %q", c.OpenAIBaseURL))
		}
	}
	return errors.Join(errs...)
}

// IsProduction reports whether NODE_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ChatEnabled reports whether an API key is configured for the assistant.
func (c *Config) ChatEnabled() bool {
	return c.OpenAIAPIKey.IsSet()
}
