package controller

import (
	"errors"

	"novamind-be/internal/dto"
	"novamind-be/internal/pkg/serverutils"
	"novamind-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionHeader carries the session id in both directions.
const SessionHeader = "X-Session-Id"

const (
	msgNoFile          = "No file received"
	msgUnsupportedType = "Unsupported file type"
	msgNoQuestion      = "No question provided"
	msgNoDocument      = "Please upload a file first."
	msgAIFailed        = "AI failed"
)

type IStudyController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	NewSession(ctx *fiber.Ctx) error
}

type studyController struct {
	studyService service.IStudyService
}

func NewStudyController(studyService service.IStudyService) IStudyController {
	return &studyController{
		studyService: studyService,
	}
}

func (c *studyController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", c.Upload)
	r.Post("/ask", c.Ask)
	r.Post("/session", c.NewSession)
}

func (c *studyController) Upload(ctx *fiber.Ctx) error {
	sessionId := ctx.Get(SessionHeader)

	fh, err := ctx.FormFile("file")
	if err != nil || fh.Filename == "" {
		return serverutils.BadRequest(msgNoFile)
	}

	src, err := fh.Open()
	if err != nil {
		return serverutils.InternalError("Failed to read upload", err)
	}
	defer src.Close()

	res, err := c.studyService.Ingest(ctx.UserContext(), sessionId, fh.Filename, src)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFileType) {
			return serverutils.BadRequest(msgUnsupportedType)
		}
		return err
	}

	ctx.Set(SessionHeader, res.SessionId)
	return ctx.JSON(dto.UploadResponse{Notes: res.Notes, SessionId: res.SessionId})
}

func (c *studyController) Ask(ctx *fiber.Ctx) error {
	sessionId := ctx.Get(SessionHeader)

	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest(msgNoQuestion)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.BadRequest(msgNoQuestion)
	}

	res, err := c.studyService.Ask(ctx.UserContext(), sessionId, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoQuestion):
			return serverutils.BadRequest(msgNoQuestion)
		case errors.Is(err, service.ErrNoDocument):
			return serverutils.BadRequest(msgNoDocument)
		case errors.Is(err, service.ErrAIFailed):
			return serverutils.InternalError(msgAIFailed, err)
		}
		return err
	}

	return ctx.JSON(res)
}

// NewSession hands out a fresh session id; nothing is stored until the first upload.
func (c *studyController) NewSession(ctx *fiber.Ctx) error {
	id := uuid.NewString()
	ctx.Set(SessionHeader, id)
	return ctx.JSON(dto.SessionResponse{SessionId: id})
}
