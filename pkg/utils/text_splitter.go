package utils

// DefaultChunkSize is the number of characters sent to the LLM per summary request.
const DefaultChunkSize = 10000

// ChunkText splits text into consecutive pieces of exactly maxChars characters
// (Unicode code points), the last piece holding the remainder.
// Joining the pieces gives back the original text. A text no longer than
// maxChars, including the empty string, comes back as a single piece.
func ChunkText(text string, maxChars int) []string {
	if maxChars < 1 {
		maxChars = DefaultChunkSize
	}

	runes := []rune(text)
	if len(runes) <= maxChars {
		return []string{text}
	}

	chunks := make([]string, 0, (len(runes)+maxChars-1)/maxChars)
	for len(runes) > maxChars {
		chunks = append(chunks, string(runes[:maxChars]))
		runes = runes[maxChars:]
	}
	chunks = append(chunks, string(runes))

	return chunks
}

// Truncate returns at most the first maxChars characters of text.
func Truncate(text string, maxChars int) string {
	if maxChars < 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
