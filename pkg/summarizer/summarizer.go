package summarizer

import (
	"context"
	"fmt"
	"strings"

	"novamind-be/internal/constant"
	"novamind-be/internal/pkg/logger"
	"novamind-be/pkg/llm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

const (
	moduleName = "SUMMARIZER"

	// Separator sits between consecutive chunk summaries.
	Separator = "\n\n"

	DefaultConcurrency = 4
)

var tracer = otel.Tracer("novamind-be/pkg/summarizer")

// ChunkSummary is the outcome of one chunk. Text is empty when Err is set.
type ChunkSummary struct {
	Index int
	Text  string
	Err   error
}

type Summarizer struct {
	provider    llm.LLMProvider
	logger      logger.ILogger
	concurrency int
	prompt      func(chunk string) string
}

type Option func(*Summarizer)

// WithConcurrency bounds in-flight LLM calls. 1 means strictly sequential.
func WithConcurrency(n int) Option {
	return func(s *Summarizer) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithPromptBuilder swaps the notes template.
func WithPromptBuilder(fn func(chunk string) string) Option {
	return func(s *Summarizer) {
		if fn != nil {
			s.prompt = fn
		}
	}
}

func New(provider llm.LLMProvider, log logger.ILogger, opts ...Option) *Summarizer {
	s := &Summarizer{
		provider:    provider,
		logger:      log,
		concurrency: DefaultConcurrency,
		prompt:      constant.StudyNotesPrompt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize returns the per-chunk summaries joined by Separator in chunk order.
// A failing chunk contributes an empty string; the only error is context cancellation.
func (s *Summarizer) Summarize(ctx context.Context, chunks []string) (string, error) {
	results, err := s.SummarizeDetailed(ctx, chunks)
	if err != nil {
		return "", err
	}
	return Join(results), nil
}

// SummarizeDetailed issues one Generate call per chunk and returns results
// indexed like chunks.
func (s *Summarizer) SummarizeDetailed(ctx context.Context, chunks []string) ([]ChunkSummary, error) {
	results := make([]ChunkSummary, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, chunk := range chunks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = s.summarizeChunk(gctx, i, len(chunks), chunk)
			// Per-chunk failures stay in results so the group never cancels siblings.
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("summarize cancelled: %w", err)
	}
	return results, nil
}

func (s *Summarizer) summarizeChunk(ctx context.Context, index, total int, chunk string) ChunkSummary {
	ctx, span := tracer.Start(ctx, "summarizer.chunk")
	defer span.End()
	span.SetAttributes(
		attribute.Int("chunk.index", index),
		attribute.Int("chunk.total", total),
		attribute.Int("chunk.chars", len(chunk)),
	)

	s.logger.Info(moduleName, fmt.Sprintf("Processing chunk %d/%d", index+1, total), nil)

	text, err := s.provider.Generate(ctx, s.prompt(chunk))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		s.logger.Error(moduleName, "Chunk failed", map[string]interface{}{
			"chunk": index + 1,
			"total": total,
			"error": err.Error(),
		})
		return ChunkSummary{Index: index, Err: err}
	}

	return ChunkSummary{Index: index, Text: text}
}

// Join concatenates summaries in order; failed chunks leave an empty slot.
func Join(results []ChunkSummary) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.Text
	}
	return strings.Join(parts, Separator)
}

// Failed counts chunks whose Generate call returned an error.
func Failed(results []ChunkSummary) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
