package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"novamind-be/internal/constant"
	"novamind-be/internal/dto"
	"novamind-be/internal/entity"
	"novamind-be/internal/pkg/logger"
	"novamind-be/internal/repository/contract"
	"novamind-be/pkg/events"
	"novamind-be/pkg/extractor"
	"novamind-be/pkg/llm"
	"novamind-be/pkg/summarizer"
	"novamind-be/pkg/utils"
)

const (
	moduleName = "STUDY"

	DefaultSessionId = "default"

	notesPreviewChars = 350
)

var (
	ErrUnsupportedFileType = extractor.ErrUnsupportedFileType
	ErrNoQuestion          = errors.New("no question provided")
	ErrNoDocument          = errors.New("no document uploaded for session")
	ErrAIFailed            = errors.New("ai generation failed")
)

type IStudyService interface {
	// Ingest stores the upload, extracts its text and returns study notes.
	Ingest(ctx context.Context, sessionId, fileName string, src io.Reader) (*dto.IngestResult, error)
	// Load stores the upload's text for the session without generating notes.
	Load(ctx context.Context, sessionId, fileName string, src io.Reader) (*dto.IngestResult, error)
	// Ask answers a question against the session's most recent document.
	Ask(ctx context.Context, sessionId, question string) (*dto.AskResponse, error)
}

type StudyServiceConfig struct {
	UploadDir string
	ChunkSize int
}

type studyService struct {
	extractors extractor.Set
	summarizer *summarizer.Summarizer
	provider   llm.LLMProvider
	documents  contract.DocumentRepository
	publisher  IPublisherService
	logger     logger.ILogger

	uploadDir string
	chunkSize int

	// fileMu serializes save+extract because every upload of an extension shares one path.
	fileMu sync.Mutex
}

func NewStudyService(
	cfg StudyServiceConfig,
	extractors extractor.Set,
	summarizer *summarizer.Summarizer,
	provider llm.LLMProvider,
	documents contract.DocumentRepository,
	publisher IPublisherService,
	log logger.ILogger,
) IStudyService {
	if cfg.UploadDir == "" {
		cfg.UploadDir = "."
	}
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = utils.DefaultChunkSize
	}
	return &studyService{
		extractors: extractors,
		summarizer: summarizer,
		provider:   provider,
		documents:  documents,
		publisher:  publisher,
		logger:     log,
		uploadDir:  cfg.UploadDir,
		chunkSize:  cfg.ChunkSize,
	}
}

func sessionOrDefault(sessionId string) string {
	if sessionId == "" {
		return DefaultSessionId
	}
	return sessionId
}

// UploadPath is where an upload with fileName's extension is written. Earlier
// uploads with the same extension are overwritten.
func UploadPath(dir, fileName string) string {
	return filepath.Join(dir, "uploaded"+strings.ToLower(filepath.Ext(fileName)))
}

func (s *studyService) Ingest(ctx context.Context, sessionId, fileName string, src io.Reader) (*dto.IngestResult, error) {
	result, kind, text, err := s.load(ctx, sessionOrDefault(sessionId), fileName, src)
	if err != nil {
		return nil, err
	}
	if text == "" {
		s.publishIngested(ctx, fileName, kind, result)
		return result, nil
	}

	chunks := utils.ChunkText(text, s.chunkSize)
	summaries, err := s.summarizer.SummarizeDetailed(ctx, chunks)
	if err != nil {
		s.logger.Error(moduleName, "Summarization error", map[string]interface{}{
			"session_id": result.SessionId,
			"error":      err.Error(),
		})
		return nil, err
	}

	result.Notes = summarizer.Join(summaries)
	result.Chunks = len(chunks)
	result.FailedChunks = summarizer.Failed(summaries)

	s.logger.Info(moduleName, "Notes generated", map[string]interface{}{
		"session_id":    result.SessionId,
		"chunks":        result.Chunks,
		"failed_chunks": result.FailedChunks,
		"preview":       utils.Truncate(result.Notes, notesPreviewChars),
	})
	s.publishIngested(ctx, fileName, kind, result)

	return result, nil
}

func (s *studyService) Load(ctx context.Context, sessionId, fileName string, src io.Reader) (*dto.IngestResult, error) {
	result, kind, _, err := s.load(ctx, sessionOrDefault(sessionId), fileName, src)
	if err != nil {
		return nil, err
	}
	s.publishIngested(ctx, fileName, kind, result)
	return result, nil
}

// load saves and extracts the upload, then replaces or clears the session's
// document. It returns the extracted text, empty when there was none.
func (s *studyService) load(ctx context.Context, sessionId, fileName string, src io.Reader) (*dto.IngestResult, extractor.Kind, string, error) {
	kind, err := extractor.KindForFile(fileName)
	if err != nil {
		return nil, kind, "", err
	}
	ex, err := s.extractors.For(kind)
	if err != nil {
		return nil, kind, "", err
	}

	res, err := s.saveAndExtract(ctx, ex, UploadPath(s.uploadDir, fileName), src)
	if err != nil {
		return nil, kind, "", err
	}

	result := &dto.IngestResult{
		SessionId:  sessionId,
		Extraction: string(res.Status),
	}

	if !res.HasText() {
		// The previous document no longer represents this session's upload.
		if err := s.documents.Delete(ctx, sessionId); err != nil {
			return nil, kind, "", fmt.Errorf("clear session document: %w", err)
		}
		s.logger.Warn(moduleName, "No readable text", map[string]interface{}{
			"session_id": sessionId,
			"file_name":  fileName,
			"status":     res.Status,
			"error":      errString(res.Err),
		})
		result.Notes = constant.NoReadableTextNotice
		return result, kind, "", nil
	}

	doc := &entity.Document{
		SessionId:  sessionId,
		FileName:   fileName,
		Kind:       string(kind),
		Text:       res.Text,
		IngestedAt: time.Now().UTC(),
	}
	if err := s.documents.Save(ctx, doc); err != nil {
		return nil, kind, "", fmt.Errorf("store document: %w", err)
	}
	result.Characters = len([]rune(res.Text))

	return result, kind, res.Text, nil
}

func (s *studyService) saveAndExtract(ctx context.Context, ex extractor.Extractor, path string, src io.Reader) (extractor.Result, error) {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	if err := saveUpload(path, src); err != nil {
		s.logger.Error(moduleName, "Failed to save upload", map[string]interface{}{"path": path, "error": err.Error()})
		return extractor.Result{}, fmt.Errorf("save upload: %w", err)
	}
	return ex.Extract(ctx, path), nil
}

func saveUpload(path string, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func (s *studyService) Ask(ctx context.Context, sessionId, question string) (*dto.AskResponse, error) {
	sessionId = sessionOrDefault(sessionId)

	if question == "" {
		return nil, ErrNoQuestion
	}

	doc, err := s.documents.FindBySession(ctx, sessionId)
	if err != nil {
		return nil, fmt.Errorf("load session document: %w", err)
	}
	if doc == nil || strings.TrimSpace(doc.Text) == "" {
		return nil, ErrNoDocument
	}

	prompt := constant.AskQuestionPrompt(utils.Truncate(doc.Text, constant.QuestionContextChars), question)

	answer, err := s.provider.Generate(ctx, prompt)
	s.publish(ctx, events.New(events.TypeQuestionAnswered, map[string]interface{}{
		"session_id":     sessionId,
		"question_chars": len([]rune(question)),
		"success":        err == nil,
	}))
	if err != nil {
		s.logger.Error(moduleName, "Answer generation failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrAIFailed, err)
	}

	return &dto.AskResponse{Answer: answer}, nil
}

func (s *studyService) publishIngested(ctx context.Context, fileName string, kind extractor.Kind, r *dto.IngestResult) {
	s.publish(ctx, events.New(events.TypeDocumentIngested, map[string]interface{}{
		"session_id":    r.SessionId,
		"file_name":     fileName,
		"kind":          string(kind),
		"status":        r.Extraction,
		"characters":    r.Characters,
		"chunks":        r.Chunks,
		"failed_chunks": r.FailedChunks,
	}))
}

func (s *studyService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, event)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
