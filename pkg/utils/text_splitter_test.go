package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestChunkText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		want     []string
	}{
		{
			name:     "empty text",
			text:     "",
			maxChars: 5,
			want:     []string{""},
		},
		{
			name:     "shorter than threshold",
			text:     "abc",
			maxChars: 5,
			want:     []string{"abc"},
		},
		{
			name:     "exactly threshold",
			text:     "abcde",
			maxChars: 5,
			want:     []string{"abcde"},
		},
		{
			name:     "exact multiple has no empty tail",
			text:     "abcdefghij",
			maxChars: 5,
			want:     []string{"abcde", "fghij"},
		},
		{
			name:     "remainder in last chunk",
			text:     "abcdefghijkl",
			maxChars: 5,
			want:     []string{"abcde", "fghij", "kl"},
		},
		{
			name:     "single character chunks",
			text:     "xyz",
			maxChars: 1,
			want:     []string{"x", "y", "z"},
		},
		{
			name:     "multibyte characters count once",
			text:     "héllo wörld",
			maxChars: 4,
			want:     []string{"héll", "o wö", "rld"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChunkText(tt.text, tt.maxChars))
		})
	}
}

func TestChunkTextDefaultSize(t *testing.T) {
	text := strings.Repeat("a", DefaultChunkSize+1)

	chunks := ChunkText(text, 0)

	assert.Len(t, chunks, 2)
	assert.Equal(t, DefaultChunkSize, len(chunks[0]))
	assert.Equal(t, "a", chunks[1])
}

func TestChunkTextReconstructs(t *testing.T) {
	text := strings.Repeat("The mitochondria is the powerhouse of the cell. ", 37) + "ünïcödé ✓"
	total := utf8.RuneCountInString(text)

	for n := 1; n <= total+3; n += 7 {
		chunks := ChunkText(text, n)

		assert.Equal(t, text, strings.Join(chunks, ""), "n=%d", n)
		for i, c := range chunks[:len(chunks)-1] {
			assert.Equal(t, n, utf8.RuneCountInString(c), "n=%d chunk=%d", n, i)
		}
		last := chunks[len(chunks)-1]
		assert.LessOrEqual(t, utf8.RuneCountInString(last), n)
		if total > n {
			assert.NotEmpty(t, last, "n=%d", n)
		} else {
			assert.Len(t, chunks, 1)
		}
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "ñá", Truncate("ñáé", 2))
	assert.Equal(t, "abc", Truncate("abc", -1))
}
