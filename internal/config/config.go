package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Upload    UploadConfig
	Retention RetentionConfig
	Ai        AIConfig
	Otel      OtelConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type UploadConfig struct {
	Dir       string
	MaxSizeMB int
}

// RetentionConfig decides how long documents and sessions stay in process
// memory. A zero TTL keeps everything for the lifetime of the process.
type RetentionConfig struct {
	TTL time.Duration
}

type AIConfig struct {
	Provider      string // "ollama" or "gemini"
	Model         string
	OllamaBaseURL string
	GeminiAPIKey  string
	// Timeout bounds each generation call. Zero leaves calls
	// latency-unbounded like the original system.
	Timeout time.Duration
}

// OtelConfig controls tracing. Disabled unless OTEL_ENABLED=true.
type OtelConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Upload: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", "uploads"),
			MaxSizeMB: getEnvAsInt("UPLOAD_MAX_SIZE_MB", 16),
		},
		Retention: RetentionConfig{
			TTL: time.Duration(getEnvAsInt("RETENTION_TTL_MINUTES", 0)) * time.Minute,
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "ollama"),
			Model:         getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
			Timeout:       time.Duration(getEnvAsInt("LLM_TIMEOUT_SECONDS", 0)) * time.Second,
		},
		Otel: OtelConfig{
			Enabled:  getEnv("OTEL_ENABLED", "") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
