package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/brief"
	"gopkg.in/yaml.v3"
)

// Providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds the settings for one invocation. Zero values fall back to
// the provider defaults, except Temperature, which starts at
// brief.DefaultTemperature and is sent as configured.
type Config struct {
	Provider          string        `yaml:"provider"`
	GenerationModel   string        `yaml:"generation_model"`
	EmbeddingModel    string        `yaml:"embedding_model"`
	Temperature       float32       `yaml:"temperature"`
	MaxOutputTokens   int           `yaml:"max_output_tokens"`
	RetryAttempts     int           `yaml:"retry_attempts"`
	RetryBaseDelay    time.Duration `yaml:"retry_base_delay"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	BatchSize         int           `yaml:"batch_size"`

	GeminiAPIKey  string `yaml:"gemini_api_key"`
	OpenAIAPIKey  string `yaml:"openai_api_key"`
	OpenAIBaseURL string `yaml:"openai_base_url"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Provider:          ProviderGemini,
		Temperature:       brief.DefaultTemperature,
		MaxOutputTokens:   brief.DefaultMaxOutputTokens,
		RetryAttempts:     3,
		RetryBaseDelay:    time.Second,
		RequestsPerSecond: 2,
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// only an error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	} else if errors.Is(err, fs.ErrNotExist) {
		return cfg, brief.Errorf(brief.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, brief.Errorf(brief.EINVALID, "parse config %q: %v", path, err)
	}
	return cfg, cfg.Validate()
}

// ApplyEnv fills credentials from the environment. Environment values win
// over the config file.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIAPIKey = v
	}
	if v := getenv("OPENAI_BASE_URL"); v != "" {
		c.OpenAIBaseURL = v
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return brief.Errorf(brief.EINVALID, "unknown provider %q (want gemini or openai)", c.Provider)
	}
	if c.RetryAttempts < 1 {
		return brief.Errorf(brief.EINVALID, "retry_attempts must be at least 1")
	}
	if c.RetryBaseDelay < 0 {
		return brief.Errorf(brief.EINVALID, "retry_base_delay must not be negative")
	}
	return nil
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// configPath resolves the config file location. An explicit path or
// BRIEF_CONFIG must exist; the default location is optional.
func configPath(flag string, getenv func(string) string) (path string, required bool) {
	if flag != "" {
		return flag, true
	}
	if path := getenv("BRIEF_CONFIG"); path != "" {
		return path, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".brief", "config.yaml"), false
}

// keyHint explains where to get a key for the provider.
func keyHint(provider string) string {
	if provider == ProviderOpenAI {
		return "OPENAI_API_KEY environment variable not set. Get an API key at https://platform.openai.com/api-keys"
	}
	return "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey"
}

