// Package config loads netprep settings from an optional YAML file, a .env
// file and NETPREP_* environment variables.
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

	"github.com/abhisek/netprep/internal/llm"
)

// EnvPrefix is prepended to every environment variable netprep reads.
const EnvPrefix = "NETPREP"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string `mapstructure:"env"`       // local, development or production
	DBPath   string `mapstructure:"db_path"`   // SQLite database file; empty means the XDG default
	BankPath string `mapstructure:"bank_path"` // external question bank; empty means the embedded one
	LogFile  string `mapstructure:"log_file"`  // zap output file
	LLM      LLM    `mapstructure:"llm"`
}

// LLM contains the tutor's provider settings.
type LLM struct {
	Provider   string        `mapstructure:"provider"` // empty means discover from standard API key variables
	Timeout    time.Duration `mapstructure:"timeout"`
	Anthropic  Provider      `mapstructure:"anthropic"`
	OpenAI     Provider      `mapstructure:"openai"`
	Gemini     Provider      `mapstructure:"gemini"`
	OpenRouter Provider      `mapstructure:"openrouter"`
}

// Provider is the per-provider credential block.
type Provider struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// IsProduction reports whether the production environment is selected.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration. path is an explicit config file; when empty the
// XDG location is tried and a missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(configDir())
	}

	v.SetDefault("env", "local")
	v.SetDefault("db_path", "")
	v.SetDefault("bank_path", "")
	v.SetDefault("log_file", DefaultLogFile())
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", "30s")
	for _, p := range []string{"anthropic", "openai", "gemini", "openrouter"} {
		v.SetDefault("llm."+p+".api_key", "")
		v.SetDefault("llm."+p+".model", "")
		v.SetDefault("llm."+p+".base_url", "")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short aliases and the provider keys without the llm_ segment.
	_ = v.BindEnv("db_path", EnvPrefix+"_DB", EnvPrefix+"_DB_PATH")
	_ = v.BindEnv("bank_path", EnvPrefix+"_BANK", EnvPrefix+"_BANK_PATH")
	_ = v.BindEnv("llm.anthropic.api_key", EnvPrefix+"_ANTHROPIC_API_KEY")
	_ = v.BindEnv("llm.anthropic.model", EnvPrefix+"_ANTHROPIC_MODEL")
	_ = v.BindEnv("llm.openai.api_key", EnvPrefix+"_OPENAI_API_KEY")
	_ = v.BindEnv("llm.openai.model", EnvPrefix+"_OPENAI_MODEL")
	_ = v.BindEnv("llm.openai.base_url", EnvPrefix+"_OPENAI_BASE_URL")
	_ = v.BindEnv("llm.gemini.api_key", EnvPrefix+"_GEMINI_API_KEY")
	_ = v.BindEnv("llm.gemini.model", EnvPrefix+"_GEMINI_MODEL")
	_ = v.BindEnv("llm.openrouter.api_key", EnvPrefix+"_OPENROUTER_API_KEY")
	_ = v.BindEnv("llm.openrouter.model", EnvPrefix+"_OPENROUTER_MODEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// LLMConfig converts the tutor settings into an llm.Config. With no
// provider configured it falls back to llm.DiscoverConfig and reports false
// when nothing is found there either.
func (c *Config) LLMConfig() (llm.Config, bool) {
	out, ok := llm.DiscoverConfig()
	if c.LLM.Provider != "" {
		out, ok = llm.DefaultConfig(c.LLM.Provider), true
	}
	if !ok {
		return llm.Config{}, false
	}

	block := c.LLM.block(out.Provider)
	overlay(&out.APIKey, block.APIKey)
	overlay(&out.Model, block.Model)
	overlay(&out.BaseURL, block.BaseURL)
	if c.LLM.Timeout > 0 {
		out.Timeout = c.LLM.Timeout
	}
	return out, true
}

// block returns the credentials section for the named provider.
func (l LLM) block(provider string) Provider {
	switch provider {
	case "anthropic":
		return l.Anthropic
	case "openai":
		return l.OpenAI
	case "gemini":
		return l.Gemini
	case "openrouter":
		return l.OpenRouter
	}
	return Provider{}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// configDir returns $XDG_CONFIG_HOME/netprep, or ~/.config/netprep.
func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "netprep")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "netprep")
}

// DefaultLogFile returns $XDG_STATE_HOME/netprep/netprep.log, or
// ~/.local/state/netprep/netprep.log.
func DefaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "netprep", "netprep.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "netprep.log"
	}
	return filepath.Join(home, ".local", "state", "netprep", "netprep.log")
}
