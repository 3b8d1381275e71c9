package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"novamind-be/pkg/llm"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-2.5-flash"

// GeminiProvider talks to the Google generative-language API through the genai SDK.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

// Ensure GeminiProvider implements LLMProvider
var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is empty (set GEMINI_API_KEY)")
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	// The SDK wants the bare model id.
	modelName = strings.TrimPrefix(modelName, "models/")

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}, nil
}

func (p *GeminiProvider) model(opts *llm.Options) *genai.GenerativeModel {
	name := p.modelName
	if opts.Model != "" {
		name = strings.TrimPrefix(opts.Model, "models/")
	}
	m := p.client.GenerativeModel(name)
	if opts.Temperature > 0 {
		m.SetTemperature(float32(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	return m
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	m := p.model(llm.Apply(llm.Options{}, options...))

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return responseText(resp)
}

func (p *GeminiProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) == 0 {
		return "", errors.New("gemini chat: empty history")
	}
	m := p.model(llm.Apply(llm.Options{}, options...))

	session := m.StartChat()
	for _, msg := range history[:len(history)-1] {
		role := msg.Role
		if role == "assistant" {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Parts: []genai.Part{genai.Text(msg.Content)},
			Role:  role,
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(history[len(history)-1].Content))
	if err != nil {
		return "", fmt.Errorf("gemini chat: %w", err)
	}
	return responseText(resp)
}

// Close releases the underlying gRPC connection.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini: no response generated")
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		// First candidate with content wins.
		if sb.Len() > 0 {
			break
		}
	}

	if sb.Len() == 0 {
		return "", errors.New("gemini: response carried no text")
	}
	return sb.String(), nil
}
