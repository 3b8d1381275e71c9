package serverutils

import (
	"errors"

	"novamind-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// HTTPError carries the status and client-facing message for a failure.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func BadRequest(message string) *HTTPError {
	return &HTTPError{Status: fiber.StatusBadRequest, Message: message}
}

func InternalError(message string, err error) *HTTPError {
	return &HTTPError{Status: fiber.StatusInternalServerError, Message: message, Err: err}
}

// ErrorHandlerMiddleware turns errors returned by handlers into `{"error": ...}` bodies.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	handle := ErrorHandler(log)
	return func(ctx *fiber.Ctx) error {
		if err := ctx.Next(); err != nil {
			return handle(ctx, err)
		}
		return nil
	}
}

// ErrorHandler is the fiber.Config hook for failures raised before any
// middleware runs, such as an oversized request body.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status, message := statusAndMessage(err)

		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"status": status,
				"error":  err.Error(),
			})
		}

		return ctx.Status(status).JSON(ErrorResponse(message))
	}
}

func statusAndMessage(err error) (int, string) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, httpErr.Message
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}
	return fiber.StatusInternalServerError, err.Error()
}
