package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures a provider. The zero Provider means
// explanations are disabled.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter" or
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// EnvProvider selects the provider explicitly. When unset, Resolve probes
// the vendors' own key variables.
const EnvProvider = "HEARWISE_LLM_PROVIDER"

// vendor binds a provider name to its Config fields. Its HEARWISE_<NAME>_*
// variables are derived from the name. baseURL is nil when the vendor has
// no endpoint override.
type vendor struct {
	name      string
	vendorKey string
	key       func(*Config) *string
	model     func(*Config) *string
	baseURL   func(*Config) *string
}

// vendors is in discovery order.
var vendors = []vendor{
	{
		name:      "gemini",
		vendorKey: "GEMINI_API_KEY",
		key:       func(c *Config) *string { return &c.Gemini.APIKey },
		model:     func(c *Config) *string { return &c.Gemini.Model },
	},
	{
		name:      "openai",
		vendorKey: "OPENAI_API_KEY",
		key:       func(c *Config) *string { return &c.OpenAI.APIKey },
		model:     func(c *Config) *string { return &c.OpenAI.Model },
		baseURL:   func(c *Config) *string { return &c.OpenAI.BaseURL },
	},
	{
		name:      "anthropic",
		vendorKey: "ANTHROPIC_API_KEY",
		key:       func(c *Config) *string { return &c.Anthropic.APIKey },
		model:     func(c *Config) *string { return &c.Anthropic.Model },
		baseURL:   func(c *Config) *string { return &c.Anthropic.BaseURL },
	},
	{
		name:      "openrouter",
		vendorKey: "OPENROUTER_API_KEY",
		key:       func(c *Config) *string { return &c.OpenRouter.APIKey },
		model:     func(c *Config) *string { return &c.OpenRouter.Model },
		baseURL:   func(c *Config) *string { return &c.OpenRouter.BaseURL },
	},
}

func (v vendor) env(suffix string) string {
	return "HEARWISE_" + strings.ToUpper(v.name) + "_" + suffix
}

func lookupVendor(name string) (vendor, bool) {
	for _, v := range vendors {
		if v.name == name {
			return v, true
		}
	}
	return vendor{}, false
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv overlays HEARWISE_* variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	setFromEnv(&cfg.Provider, EnvProvider)
	for _, v := range vendors {
		setFromEnv(v.key(&cfg), v.env("API_KEY"))
		setFromEnv(v.model(&cfg), v.env("MODEL"))
		if v.baseURL != nil {
			setFromEnv(v.baseURL(&cfg), v.env("BASE_URL"))
		}
	}
	return cfg
}

// Resolve picks the configuration used by the CLI and TUI: explicit
// HEARWISE_* settings win, then well-known vendor keys. The second result
// is false when no provider is available.
func Resolve() (Config, bool) {
	if os.Getenv(EnvProvider) != "" {
		cfg := ConfigFromEnv()
		return cfg, cfg.Validate() == nil
	}
	return DiscoverConfig()
}

// DiscoverConfig returns a Config for the first vendor whose own API key
// variable is set, e.g. OPENAI_API_KEY.
func DiscoverConfig() (Config, bool) {
	for _, v := range vendors {
		if k := os.Getenv(v.vendorKey); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = v.name
			*v.key(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	v, ok := lookupVendor(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *v.key(&c) == "" {
		return fmt.Errorf("%s is required for the %s provider", v.env("API_KEY"), v.name)
	}
	return nil
}
