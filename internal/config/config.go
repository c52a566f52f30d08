package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// LLM provider
	LLMProvider    string
	LLMModel       string
	LLMBaseURL     string
	OpenAIAPIKey   string
	GeminiAPIKey   string
	LLMTimeoutSecs int

	// Frontend
	CORSAllowedOrigins string
}

// fileConfig is the optional YAML layer pointed at by CONFIG_FILE. Environment
// variables always win over file values; API keys are env-only.
type fileConfig struct {
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`
	LLM         struct {
		Provider       string `yaml:"provider"`
		Model          string `yaml:"model"`
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"llm"`
	CORSAllowedOrigins string `yaml:"cors_allowed_origins"`
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	file := loadFile(os.Getenv("CONFIG_FILE"))

	cfg := &Config{
		Port:               getEnvOrDefault("PORT", fallback(file.Port, "8080")),
		Environment:        getEnvOrDefault("ENVIRONMENT", fallback(file.Environment, "development")),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", fallback(file.LogLevel, "info")),
		LLMProvider:        getEnvOrDefault("LLM_PROVIDER", fallback(file.LLM.Provider, "openai")),
		LLMModel:           getEnvOrDefault("LLM_MODEL", fallback(file.LLM.Model, "gpt-4o-mini")),
		LLMBaseURL:         getEnvOrDefault("LLM_BASE_URL", file.LLM.BaseURL),
		LLMTimeoutSecs:     getEnvAsIntOrDefault("LLM_TIMEOUT_SECONDS", fallbackInt(file.LLM.TimeoutSeconds, 60)),
		CORSAllowedOrigins: getEnvOrDefault("CORS_ALLOWED_ORIGINS", fallback(file.CORSAllowedOrigins, "*")),
	}

	// The process refuses to start without a key for the selected provider.
	// The mock provider needs none.
	switch cfg.LLMProvider {
	case "openai", "deepseek":
		cfg.OpenAIAPIKey = mustGetEnv("OPENAI_API_KEY")
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	case "gemini":
		cfg.GeminiAPIKey = mustGetEnv("GEMINI_API_KEY")
		cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	default:
		cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	return cfg
}

func loadFile(path string) fileConfig {
	var fc fileConfig
	if path == "" {
		return fc
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("failed to read config file %s: %v", path, err))
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		panic(fmt.Sprintf("failed to parse config file %s: %v", path, err))
	}
	return fc
}

func fallback(val, defaultVal string) string {
	if val == "" {
		return defaultVal
	}
	return val
}

func fallbackInt(val, defaultVal int) int {
	if val == 0 {
		return defaultVal
	}
	return val
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
