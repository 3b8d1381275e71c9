package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Keys    APIKeys
	Ai      AIConfig
	Extract ExtractConfig
	Session SessionConfig
	Events  EventsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	MaxUploadMB        int
	UploadDir          string
	OtelEnabled        bool
	OtelEndpoint       string
}

type APIKeys struct {
	GoogleGemini string
	OpenAI       string
}

type AIConfig struct {
	LLMProvider        string // "gemini", "ollama" or "openai"
	LLMModel           string
	LLMTimeout         time.Duration
	OllamaBaseURL      string
	OpenAIBaseURL      string
	ChunkSize          int
	SummaryConcurrency int
}

type ExtractConfig struct {
	TesseractPath  string // only used by tesseract_exec builds
	OCRLanguage    string
	TessdataPrefix string
}

type SessionConfig struct {
	Store    string // "memory" or "redis"
	TTL      time.Duration
	RedisURL string
}

type EventsConfig struct {
	Topic   string
	NatsURL string // empty disables the NATS mirror
}

var defaults = map[string]interface{}{
	"APP_PORT":                    "5000",
	"GO_ENV":                      "development",
	"LOG_FILE_PATH":               "app.log",
	"CORS_ALLOWED_ORIGINS":        "*",
	"MAX_UPLOAD_MB":               10,
	"UPLOAD_DIR":                  ".",
	"OTEL_ENABLED":                false,
	"OTEL_EXPORTER_OTLP_ENDPOINT": "localhost:4318",
	"GEMINI_API_KEY":              "",
	"OPENAI_API_KEY":              "",
	"LLM_PROVIDER":                "gemini",
	"LLM_MODEL":                   "",
	"LLM_TIMEOUT":                 "0s",
	"OLLAMA_BASE_URL":             "http://localhost:11434",
	"OPENAI_BASE_URL":             "",
	"CHUNK_SIZE":                  10000,
	"SUMMARY_CONCURRENCY":         4,
	"TESSERACT_PATH":              "tesseract",
	"OCR_LANGUAGE":                "eng",
	"TESSDATA_PREFIX":             "",
	"SESSION_STORE":               "memory",
	"SESSION_TTL":                 "1h",
	"REDIS_URL":                   "redis://localhost:6379",
	"EVENTS_TOPIC":                "study-events",
	"NATS_URL":                    "",
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper maps a populated viper instance onto Config.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Port:               v.GetString("APP_PORT"),
			Environment:        v.GetString("GO_ENV"),
			LogFilePath:        v.GetString("LOG_FILE_PATH"),
			CorsAllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
			MaxUploadMB:        v.GetInt("MAX_UPLOAD_MB"),
			UploadDir:          v.GetString("UPLOAD_DIR"),
			OtelEnabled:        v.GetBool("OTEL_ENABLED"),
			OtelEndpoint:       v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
		Keys: APIKeys{
			GoogleGemini: v.GetString("GEMINI_API_KEY"),
			OpenAI:       v.GetString("OPENAI_API_KEY"),
		},
		Ai: AIConfig{
			LLMProvider:        v.GetString("LLM_PROVIDER"),
			LLMModel:           v.GetString("LLM_MODEL"),
			LLMTimeout:         v.GetDuration("LLM_TIMEOUT"),
			OllamaBaseURL:      v.GetString("OLLAMA_BASE_URL"),
			OpenAIBaseURL:      v.GetString("OPENAI_BASE_URL"),
			ChunkSize:          v.GetInt("CHUNK_SIZE"),
			SummaryConcurrency: v.GetInt("SUMMARY_CONCURRENCY"),
		},
		Extract: ExtractConfig{
			TesseractPath:  v.GetString("TESSERACT_PATH"),
			OCRLanguage:    v.GetString("OCR_LANGUAGE"),
			TessdataPrefix: v.GetString("TESSDATA_PREFIX"),
		},
		Session: SessionConfig{
			Store:    v.GetString("SESSION_STORE"),
			TTL:      v.GetDuration("SESSION_TTL"),
			RedisURL: v.GetString("REDIS_URL"),
		},
		Events: EventsConfig{
			Topic:   v.GetString("EVENTS_TOPIC"),
			NatsURL: v.GetString("NATS_URL"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
