package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/netprep/internal/store"
)

// Credentials configure the selected provider.
type Credentials struct {
	APIKey  string
	Model   string // alias or full model id
	BaseURL string // empty means the provider's public endpoint
}

// Config selects and configures one provider.
type Config struct {
	Provider string // anthropic, gemini, openai, openrouter or mock
	Credentials
	Retry RetryPolicy

	// Timeout bounds a whole Complete call including retries. Callers
	// apply it to their context.
	Timeout time.Duration
}

// backend describes one supported provider.
type backend struct {
	name         string
	envKey       string // standard API key variable used by DiscoverConfig
	defaultModel string
	aliases      map[string]string
	open         func(ctx context.Context, c Credentials) (Provider, error)
}

// backends is ordered by discovery priority.
var backends = []backend{
	{
		name:         "gemini",
		envKey:       "GEMINI_API_KEY",
		defaultModel: "gemini-flash",
		aliases: map[string]string{
			"gemini-flash": "gemini-2.0-flash",
			"gemini-pro":   "gemini-2.5-pro",
		},
		open: func(ctx context.Context, c Credentials) (Provider, error) { return newGemini(ctx, c) },
	},
	{
		name:         "openai",
		envKey:       "OPENAI_API_KEY",
		defaultModel: "gpt-4o-mini",
		open:         func(_ context.Context, c Credentials) (Provider, error) { return newOpenAI(c), nil },
	},
	{
		name:         "anthropic",
		envKey:       "ANTHROPIC_API_KEY",
		defaultModel: "claude-haiku",
		aliases: map[string]string{
			"claude-haiku":  "claude-haiku-4-5-20251001",
			"claude-sonnet": "claude-sonnet-4-5-20250929",
		},
		open: func(_ context.Context, c Credentials) (Provider, error) { return newAnthropic(c), nil },
	},
	{
		name:         "openrouter",
		envKey:       "OPENROUTER_API_KEY",
		defaultModel: "google/gemini-2.0-flash-001",
		open: func(_ context.Context, c Credentials) (Provider, error) {
			if c.BaseURL == "" {
				c.BaseURL = openRouterURL
			}
			return newOpenAI(c), nil
		},
	},
}

func lookupBackend(name string) (backend, bool) {
	for _, b := range backends {
		if b.name == name {
			return b, true
		}
	}
	return backend{}, false
}

// DefaultConfig returns the settings for provider with its default model,
// no key and the standard retry policy.
func DefaultConfig(provider string) Config {
	cfg := Config{
		Provider: provider,
		Retry:    DefaultRetryPolicy(),
		Timeout:  30 * time.Second,
	}
	if b, ok := lookupBackend(provider); ok {
		cfg.Model = b.defaultModel
	}
	return cfg
}

// DiscoverConfig picks the first provider whose standard API key variable
// is set, in the order Gemini, OpenAI, Anthropic, OpenRouter.
func DiscoverConfig() (Config, bool) {
	for _, b := range backends {
		if k := os.Getenv(b.envKey); k != "" {
			cfg := DefaultConfig(b.name)
			cfg.APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the provider is known and has a key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	if _, ok := lookupBackend(c.Provider); !ok {
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("no API key for the %s provider (set NETPREP_%s_API_KEY)", c.Provider, strings.ToUpper(c.Provider))
	}
	return nil
}

// NewProvider builds the configured provider. Calls go through retry
// first, then event recording when repo is non-nil, so every attempt is
// recorded.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo, log *zap.Logger) (Provider, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Provider == "mock" {
		return NewFake(), nil
	}

	b, _ := lookupBackend(cfg.Provider)
	creds := cfg.Credentials
	if creds.Model == "" {
		creds.Model = b.defaultModel
	}
	if id, ok := b.aliases[creds.Model]; ok {
		creds.Model = id
	}

	base, err := b.open(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("open %s provider: %w", b.name, err)
	}
	log.Info("LLM provider ready", zap.String("provider", b.name), zap.String("model", base.Model()))

	p := base
	if repo != nil {
		p = Record(p, b.name, repo, log)
	}
	return Retry(p, cfg.Retry, log), nil
}
