package factory

import (
	"context"
	"fmt"
	"time"

	"novamind-be/pkg/llm"
	"novamind-be/pkg/llm/gemini"
	"novamind-be/pkg/llm/ollama"
	"novamind-be/pkg/llm/openai"
)

type Params struct {
	Provider      string
	Model         string
	GeminiAPIKey  string
	OllamaBaseURL string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Timeout       time.Duration
}

func NewLLMProvider(ctx context.Context, p Params) (llm.LLMProvider, error) {
	switch p.Provider {
	case llm.ProviderGemini, "":
		return gemini.NewGeminiProvider(ctx, p.GeminiAPIKey, p.Model)
	case llm.ProviderOllama:
		return ollama.NewOllamaProvider(p.OllamaBaseURL, p.Model, p.Timeout), nil
	case llm.ProviderOpenAI:
		return openai.NewOpenAIProvider(p.OpenAIAPIKey, p.OpenAIBaseURL, p.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", p.Provider)
	}
}
