package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is built once at process start and handed to the container.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	LLMProvider    string
	LLMMaxTokens   int
	LLMTemperature float64
	LLMTimeout     time.Duration

	GeminiAPIKey    string
	GeminiModel     string
	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIBaseURL   string
	AnthropicAPIKey string
	AnthropicModel  string

	DefaultQuestionCount int
	MaxQuestionCount     int

	CORSAllowedOrigins []string
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	appEnv := getEnv("APP_ENV", getEnv("NODE_ENV", EnvProduction))

	return &Config{
		Port:     getEnv("PORT", "3001"),
		AppEnv:   strings.ToLower(strings.TrimSpace(appEnv)),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		LLMProvider:    strings.ToLower(getEnv("LLM_PROVIDER", "gemini")),
		LLMMaxTokens:   intOrDefault("LLM_MAX_TOKENS", 4096),
		LLMTemperature: floatOrDefault("LLM_TEMPERATURE", 0.7),
		LLMTimeout:     durationOrDefault("LLM_TIMEOUT", 0),

		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-flash"),
		OpenAIAPIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		AnthropicAPIKey: strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-haiku"),

		DefaultQuestionCount: intOrDefault("QUIZ_DEFAULT_QUESTIONS", 5),
		MaxQuestionCount:     intOrDefault("QUIZ_MAX_QUESTIONS", 20),

		CORSAllowedOrigins: listOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv != EnvDevelopment
}

func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func intOrDefault(k string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k)))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func floatOrDefault(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return def
	}
	return f
}

func durationOrDefault(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func listOrDefault(k string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
