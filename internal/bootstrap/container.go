package bootstrap

import (
	"context"
	"fmt"
	"io"

	"novamind-be/internal/config"
	"novamind-be/internal/controller"
	"novamind-be/internal/pkg/logger"
	"novamind-be/internal/repository/contract"
	"novamind-be/internal/repository/memory"
	"novamind-be/internal/repository/redisstore"
	"novamind-be/internal/service"
	"novamind-be/pkg/extractor"
	"novamind-be/pkg/llm"
	"novamind-be/pkg/llm/factory"
	pktNats "novamind-be/pkg/nats"
	"novamind-be/pkg/summarizer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	StudyController controller.IStudyController

	// Services (the CLI drives StudyService directly)
	StudyService service.IStudyService

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func() error
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{}

	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c.Logger = sysLogger
	c.closers = append(c.closers, sysLogger.Sync)

	provider, err := factory.NewLLMProvider(ctx, factory.Params{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		GeminiAPIKey:  cfg.Keys.GoogleGemini,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		OpenAIAPIKey:  cfg.Keys.OpenAI,
		OpenAIBaseURL: cfg.Ai.OpenAIBaseURL,
		Timeout:       cfg.Ai.LLMTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("llm provider: %w", err)
	}
	if closer, ok := provider.(io.Closer); ok {
		c.closers = append(c.closers, closer.Close)
	}
	provider = llm.WithTimeout(provider, cfg.Ai.LLMTimeout)

	documents, err := c.documentRepository(ctx, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, pubSub.Close)

	var mirror service.EventMirror
	if cfg.Events.NatsURL != "" {
		natsPublisher, err := pktNats.NewPublisher(ctx, cfg.Events.NatsURL)
		if err != nil {
			// The mirror is optional; the in-process bus keeps working without it.
			sysLogger.Warn("BOOTSTRAP", "NATS unavailable, events stay in-process", map[string]interface{}{
				"url":   cfg.Events.NatsURL,
				"error": err.Error(),
			})
		} else {
			mirror = natsPublisher
			c.closers = append(c.closers, func() error { natsPublisher.Close(); return nil })
		}
	}

	publisherService := service.NewPublisherService(pubSub, cfg.Events.Topic, mirror, sysLogger)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Events.Topic, nil, sysLogger)

	// 3. Services
	extractors := extractor.Set{
		PDF:   extractor.NewPDFExtractor(sysLogger),
		Image: extractor.NewOCRExtractor(extractor.OCRConfig{
			Binary:         cfg.Extract.TesseractPath,
			Language:       cfg.Extract.OCRLanguage,
			TessdataPrefix: cfg.Extract.TessdataPrefix,
		}, sysLogger),
	}
	notes := summarizer.New(provider, sysLogger, summarizer.WithConcurrency(cfg.Ai.SummaryConcurrency))

	c.StudyService = service.NewStudyService(
		service.StudyServiceConfig{
			UploadDir: cfg.App.UploadDir,
			ChunkSize: cfg.Ai.ChunkSize,
		},
		extractors,
		notes,
		provider,
		documents,
		publisherService,
		sysLogger,
	)

	// 4. Controllers
	c.StudyController = controller.NewStudyController(c.StudyService)

	return c, nil
}

func (c *Container) documentRepository(ctx context.Context, cfg *config.Config) (contract.DocumentRepository, error) {
	switch cfg.Session.Store {
	case "redis":
		repo, err := redisstore.NewDocumentRepository(ctx, cfg.Session.RedisURL, cfg.Session.TTL)
		if err != nil {
			return nil, fmt.Errorf("redis session store: %w", err)
		}
		c.closers = append(c.closers, repo.Close)
		return repo, nil
	case "memory", "":
		return memory.NewDocumentRepository(cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Session.Store)
	}
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		_ = c.closers[i]()
	}
	c.closers = nil
}
