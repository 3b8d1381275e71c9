package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	o := Apply(Options{Temperature: 0.7}, WithModel("m"), WithMaxTokens(10))

	assert.Equal(t, 0.7, o.Temperature)
	assert.Equal(t, "m", o.Model)
	assert.Equal(t, 10, o.MaxTokens)
}

func TestGenerateFuncChatUsesLastMessage(t *testing.T) {
	f := GenerateFunc(func(ctx context.Context, prompt string) (string, error) {
		return "echo:" + prompt, nil
	})

	out, err := f.Chat(context.Background(), []Message{{Role: "user", Content: "a"}, {Role: "user", Content: "b"}})

	require.NoError(t, err)
	assert.Equal(t, "echo:b", out)
}

func TestWithTimeout(t *testing.T) {
	slow := GenerateFunc(func(ctx context.Context, prompt string) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Second):
			return "late", nil
		}
	})

	_, err := WithTimeout(slow, 10*time.Millisecond).Generate(context.Background(), "q")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, wrapped := WithTimeout(slow, 0).(*timeoutProvider)
	assert.False(t, wrapped)
}
