package serverutils

import (
	"errors"

	"compliance-audit-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors into HTTP responses.
// Domain errors map onto their natural status codes; anything unknown
// is a 500 with the message suppressed.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		switch {
		case errors.Is(err, apperror.ErrNotFound):
			status = fiber.StatusNotFound
			message = err.Error()
		case errors.Is(err, apperror.ErrDuplicateTitle):
			status = fiber.StatusConflict
			message = err.Error()
		case errors.Is(err, apperror.ErrUnsupportedFormat),
			errors.Is(err, apperror.ErrEmptyExtraction):
			status = fiber.StatusBadRequest
			message = err.Error()
		case errors.Is(err, apperror.ErrExtractionFailure):
			status = fiber.StatusUnprocessableEntity
			message = err.Error()
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		}

		return ctx.Status(status).JSON(FailureResponse(message))
	}
}
