package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Feed      FeedConfig      `yaml:"feed" json:"feed" jsonschema:"description=Feed fetching configuration"`
	Translate TranslateConfig `yaml:"translate" json:"translate" jsonschema:"description=Translation configuration"`
	Cache     CacheConfig     `yaml:"cache" json:"cache" jsonschema:"description=Response cache configuration"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" validate:"required" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" validate:"min=1s" jsonschema:"default=60s,description=HTTP server timeout"`
}

// FeedConfig holds feed fetching settings
type FeedConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" validate:"min=100ms" jsonschema:"default=5s,description=Timeout for a single feed request"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for feed requests (desktop browser by default)"`
}

// TranslateConfig holds translation settings, translation is disabled without api key
type TranslateConfig struct {
	Provider    string        `yaml:"provider" json:"provider" validate:"oneof=gemini openai" jsonschema:"default=gemini,enum=gemini,enum=openai,description=Model API flavor"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	BaseURL     string        `yaml:"base_url" json:"base_url" validate:"omitempty,url" jsonschema:"description=Alternate API base URL"`
	APIVersion  string        `yaml:"api_version" json:"api_version" jsonschema:"default=v1beta,description=Gemini API version path segment"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name (provider default if empty)"`
	Language    string        `yaml:"language" json:"language" jsonschema:"default=简体中文,description=Target language"`
	Temperature float64       `yaml:"temperature" json:"temperature" validate:"gte=0,lte=2" jsonschema:"default=0,minimum=0,maximum=2,description=Temperature for response generation"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" validate:"min=1s" jsonschema:"default=30s,description=Request timeout"`
	Top         int           `yaml:"top" json:"top" validate:"gte=0" jsonschema:"default=20,minimum=0,description=Number of newest items to translate"`
	BatchSize   int           `yaml:"batch_size" json:"batch_size" validate:"gte=1" jsonschema:"default=3,minimum=1,description=Items translated concurrently"`
	BatchDelay  time.Duration `yaml:"batch_delay" json:"batch_delay" validate:"gte=0" jsonschema:"default=1s,description=Pause between translation batches"`
	CacheSize   int           `yaml:"cache_size" json:"cache_size" validate:"gte=1" jsonschema:"default=1000,minimum=1,description=Translation memo capacity"`
	RateLimit   float64       `yaml:"rate_limit" json:"rate_limit" validate:"gte=0" jsonschema:"default=0,minimum=0,description=Max translation requests per second (0 is unlimited)"`
}

// CacheConfig holds response cache settings
type CacheConfig struct {
	TTL      time.Duration `yaml:"ttl" json:"ttl" validate:"gte=0" jsonschema:"default=1h,description=How long a live response is reused"`
	MockTTL  time.Duration `yaml:"mock_ttl" json:"mock_ttl" validate:"gte=0" jsonschema:"default=1m,description=How long a demo response is reused"`
	Disabled bool          `yaml:"disabled" json:"disabled" jsonschema:"default=false,description=Collect news on every request"`
}

// Default returns configuration with all defaults set
func Default() *Config {
	return &Config{
		Server: ServerConfig{Listen: ":8080", Timeout: 60 * time.Second},
		Feed:   FeedConfig{Timeout: 5 * time.Second},
		Translate: TranslateConfig{
			Provider:   "gemini",
			APIVersion: "v1beta",
			Language:   "简体中文",
			Timeout:    30 * time.Second,
			Top:        20,
			BatchSize:  3,
			BatchDelay: time.Second,
			CacheSize:  1000,
		},
		Cache: CacheConfig{TTL: time.Hour, MockTTL: time.Minute},
	}
}

// Load reads configuration from a YAML file. Values missing from the file keep their defaults,
// explicitly set values, zeros included, are used as is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema mismatch is reported but not fatal
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return cfg, nil
}

// Validate checks configuration values against their constraints
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", strings.TrimPrefix(e.Namespace(), "Config."), e.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// CacheTTLs returns response cache lifetimes for live and demo responses, zero if caching is disabled
func (c *Config) CacheTTLs() (live, mock time.Duration) {
	if c.Cache.Disabled {
		return 0, 0
	}
	return c.Cache.TTL, c.Cache.MockTTL
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
