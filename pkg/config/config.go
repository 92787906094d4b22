package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	SecretKey       string
	JWTIssuer       string
	TokenTTLMinutes int
	AllowedOrigins  []string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", "8000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SecretKey:       getEnv("SECRET_KEY", "your-secret-key-here"),
		JWTIssuer:       getEnv("JWT_ISSUER", "arkode-backend"),
		TokenTTLMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		AllowedOrigins:  getEnvList("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvList(key, def string) []string {
	parts := strings.Split(getEnv(key, def), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
