package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port int
	Env  string

	// Database (optional; analyses are not persisted when empty)
	DatabaseURL string

	// Where uploaded files are staged before analysis
	UploadDir string

	// LLM
	LLM LLMConfig

	// GitHub
	GitHubToken string
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	// Default provider: openai, anthropic
	DefaultProvider string

	// OpenAI settings
	OpenAIKey   string
	OpenAIModel string

	// Anthropic settings
	AnthropicKey   string
	AnthropicModel string

	// Response cache
	CacheSize int
	CacheTTL  int // seconds
}

// Load loads configuration from the environment. A .env file in the
// working directory is read first when present; real environment variables
// take precedence over it.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnvInt("PORT", 8080),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		UploadDir:   getEnv("UPLOAD_DIR", "temp_uploads"),
		GitHubToken: getEnv("GITHUB_TOKEN", ""),

		LLM: LLMConfig{
			DefaultProvider: getEnv("LLM_DEFAULT_PROVIDER", "openai"),
			OpenAIKey:       getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4"),
			AnthropicKey:    getEnv("ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
			CacheSize:       getEnvInt("LLM_CACHE_SIZE", 512),
			CacheTTL:        getEnvInt("LLM_CACHE_TTL", 86400),
		},
	}

	return cfg, nil
}

// Validate checks if required configuration is present for scoring
func (c *Config) Validate() error {
	switch c.LLM.DefaultProvider {
	case "openai":
		if c.LLM.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY required when using openai provider")
		}
	case "anthropic":
		if c.LLM.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY required when using anthropic provider")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s", c.LLM.DefaultProvider)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
