package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := FromViper(newViper())

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, 10, cfg.App.MaxUploadMB)
	assert.Equal(t, ".", cfg.App.UploadDir)
	assert.False(t, cfg.App.OtelEnabled)
	assert.Equal(t, "gemini", cfg.Ai.LLMProvider)
	assert.Empty(t, cfg.Ai.LLMModel)
	assert.Equal(t, 10000, cfg.Ai.ChunkSize)
	assert.Equal(t, 4, cfg.Ai.SummaryConcurrency)
	assert.Zero(t, cfg.Ai.LLMTimeout)
	assert.Equal(t, "tesseract", cfg.Extract.TesseractPath)
	assert.Equal(t, "eng", cfg.Extract.OCRLanguage)
	assert.Empty(t, cfg.Extract.TessdataPrefix)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "study-events", cfg.Events.Topic)
	assert.Empty(t, cfg.Events.NatsURL)
	assert.False(t, cfg.IsProduction())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("SUMMARY_CONCURRENCY", "1")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("LLM_TIMEOUT", "90s")
	t.Setenv("TESSERACT_PATH", "/usr/local/bin/tesseract")
	t.Setenv("TESSDATA_PREFIX", "/usr/share/tessdata")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := FromViper(newViper())

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "key-123", cfg.Keys.GoogleGemini)
	assert.Equal(t, 1, cfg.Ai.SummaryConcurrency)
	assert.Equal(t, 15*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 90*time.Second, cfg.Ai.LLMTimeout)
	assert.Equal(t, "/usr/local/bin/tesseract", cfg.Extract.TesseractPath)
	assert.Equal(t, "/usr/share/tessdata", cfg.Extract.TessdataPrefix)
	assert.True(t, cfg.App.OtelEnabled)
}

func TestNonGeminiProviderKeepsModelUnset(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "ollama")

	cfg := FromViper(newViper())

	assert.Equal(t, "ollama", cfg.Ai.LLMProvider)
	assert.Empty(t, cfg.Ai.LLMModel)
}

func TestExplicitModelOverride(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_MODEL", "gpt-4.1")

	cfg := FromViper(newViper())

	assert.Equal(t, "gpt-4.1", cfg.Ai.LLMModel)
}
