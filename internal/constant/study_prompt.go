package constant

import "fmt"

const (
	// NoReadableTextNotice is returned as the notes when extraction produced nothing.
	NoReadableTextNotice = "No readable text found."

	// QuestionContextChars bounds how much of the document goes into a Q&A prompt.
	QuestionContextChars = 10000

	StudyNotesPromptV1 = `
You are an expert educator.

Your job is to read the content below and produce NEW, SHORTER, high-quality study notes.

STRICT RULES
- DO NOT repeat content word-for-word
- Summarize + reorganize
- Combine related points into topics
- Add missing structure (# headings)
- Keep bullets short
- Rewrite sentences into simpler language
- Add examples only when helpful
- Skip redundant details

OUTPUT FORMAT
# Main Topic
## Subtopic
• Key point (short + simple)
    • subpoint (optional)

### Definitions
term — meaning

### Examples
• example

CONTENT TO SUMMARIZE
%s
`

	AskQuestionPromptV1 = `
You are an AI teacher. Use the uploaded text to answer the question.

RULES:
1) Treat every question independently.
2) If question is related to the text → answer using it.
3) If unrelated → answer generically.
4) Keep answers short + clean + readable.
5) End with a brief summary.

TEXT:
%s

QUESTION:
%s
`
)

// StudyNotesPrompt embeds one chunk verbatim in the notes template.
func StudyNotesPrompt(chunk string) string {
	return fmt.Sprintf(StudyNotesPromptV1, chunk)
}

// AskQuestionPrompt embeds the (already truncated) document text and the question verbatim.
func AskQuestionPrompt(documentText, question string) string {
	return fmt.Sprintf(AskQuestionPromptV1, documentText, question)
}
