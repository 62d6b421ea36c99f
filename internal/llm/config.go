package llm

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures the LLM provider used for hints. Field tags
// are relative; the caller supplies the application prefix.
type Config struct {
	// Provider is one of the Provider* names. Empty means discover from the
	// standard API key variables.
	Provider string `env:"LLM_PROVIDER"`

	Anthropic  AnthropicConfig  `envPrefix:"ANTHROPIC_"`
	OpenAI     OpenAIConfig     `envPrefix:"OPENAI_"`
	Gemini     GeminiConfig     `envPrefix:"GEMINI_"`
	OpenRouter OpenRouterConfig `envPrefix:"OPENROUTER_"`
	Retry      RetryConfig      `envPrefix:"LLM_RETRY_"`

	// Timeout bounds one hint request, retries included.
	Timeout time.Duration `env:"LLM_TIMEOUT" envDefault:"15s"`
}

type AnthropicConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"claude-haiku"`
}

type OpenAIConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL" envDefault:"gpt-4o-mini"`
	BaseURL string `env:"BASE_URL"`
}

type GeminiConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-flash"`
}

type OpenRouterConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL" envDefault:"google/gemini-2.0-flash-exp"`
	BaseURL string `env:"BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	InitialWait time.Duration `env:"INITIAL_WAIT" envDefault:"500ms"`
	MaxWait     time.Duration `env:"MAX_WAIT" envDefault:"4s"`
	Multiplier  float64       `env:"MULTIPLIER" envDefault:"2"`
}

// DefaultConfig returns the defaults declared in the envDefault tags.
func DefaultConfig() Config {
	var cfg Config
	// Parsing an empty environment only applies defaults and cannot fail.
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// standardKeys are the vendor API key variables other tools already use.
type standardKeys struct {
	Gemini     string `env:"GEMINI_API_KEY"`
	OpenAI     string `env:"OPENAI_API_KEY"`
	Anthropic  string `env:"ANTHROPIC_API_KEY"`
	OpenRouter string `env:"OPENROUTER_API_KEY"`
}

// Discover fills in the provider from the standard API key variables when
// none was selected explicitly. It probes Gemini, OpenAI, Anthropic, then
// OpenRouter and returns false if no key is set.
func (c Config) Discover(environ map[string]string) (Config, bool) {
	if c.Provider != "" {
		return c, true
	}

	var keys standardKeys
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&keys, opts); err != nil {
		return c, false
	}

	switch {
	case keys.Gemini != "":
		c.Provider = ProviderGemini
		c.Gemini.APIKey = keys.Gemini
	case keys.OpenAI != "":
		c.Provider = ProviderOpenAI
		c.OpenAI.APIKey = keys.OpenAI
	case keys.Anthropic != "":
		c.Provider = ProviderAnthropic
		c.Anthropic.APIKey = keys.Anthropic
	case keys.OpenRouter != "":
		c.Provider = ProviderOpenRouter
		c.OpenRouter.APIKey = keys.OpenRouter
	default:
		return c, false
	}
	return c, true
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case ProviderAnthropic:
		key = c.Anthropic.APIKey
	case ProviderOpenAI:
		key = c.OpenAI.APIKey
	case ProviderGemini:
		key = c.Gemini.APIKey
	case ProviderOpenRouter:
		key = c.OpenRouter.APIKey
	case ProviderMock:
		return nil
	case "":
		return ErrNotConfigured
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("an API key is required for the %s provider", c.Provider)
	}
	return nil
}
