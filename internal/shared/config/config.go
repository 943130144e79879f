package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	JWTSecret    string
	Port         string
	Env          string
	PublicURL    string // embedded in loyalty card QR payloads
	StoreClimate string // "tropical" or "templado", drives season tagging

	// LLM provider settings, picked up by internal/core/llm
	LLMProvider string
	LLMModel    string
	OpenAIKey   string
	GroqKey     string
	GeminiKey   string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		Port:         os.Getenv("PORT"),
		Env:          os.Getenv("ENV"),
		PublicURL:    os.Getenv("PUBLIC_URL"),
		StoreClimate: os.Getenv("STORE_CLIMATE"),
		LLMProvider:  os.Getenv("LLM_PROVIDER"),
		LLMModel:     os.Getenv("LLM_MODEL"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		GroqKey:      os.Getenv("GROQ_API_KEY"),
		GeminiKey:    os.Getenv("GEMINI_API_KEY"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.StoreClimate == "" {
		cfg.StoreClimate = "tropical"
	}

	return cfg
}
