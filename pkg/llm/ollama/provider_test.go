package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"novamind-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chatResponse{
			Model:   got.Model,
			Message: chatMessage{Role: "assistant", Content: "# Cells"},
			Done:    true,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3", 0)
	out, err := p.Generate(context.Background(), "summarize", llm.WithMaxTokens(64))

	require.NoError(t, err)
	assert.Equal(t, "# Cells", out)
	assert.Equal(t, "llama3", got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "summarize", got.Messages[0].Content)
	assert.Equal(t, 64, got.Options.NumPredict)
}

func TestEmptyModelUsesDefault(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chatResponse{Message: chatMessage{Role: "assistant", Content: "ok"}, Done: true})
	}))
	defer srv.Close()

	_, err := NewOllamaProvider(srv.URL, "", 0).Generate(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, DefaultModel, got.Model)
}

func TestChatMapsModelRole(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(chatResponse{Message: chatMessage{Content: "ok"}})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3", 0)
	_, err := p.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "hi"},
		{Role: "model", Content: "hello"},
		{Role: "user", Content: "again"},
	}, llm.WithModel("qwen2.5"))

	require.NoError(t, err)
	assert.Equal(t, "qwen2.5", got.Model)
	assert.Equal(t, "assistant", got.Messages[1].Role)
}

func TestGenerateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "missing", 0)
	_, err := p.Generate(context.Background(), "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
