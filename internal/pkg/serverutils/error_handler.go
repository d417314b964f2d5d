package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/pkg/logger"
)

// NewErrorHandler maps the error taxonomy to HTTP statuses. Provider
// failures never reach here: the chat service recovers them with the
// static fallback before the controller returns.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ErrorResponse(ctx, fiber.StatusBadRequest, validationErr.Message)
		}

		var notFoundErr *NotFoundError
		if errors.As(err, &notFoundErr) {
			return ErrorResponse(ctx, fiber.StatusNotFound, notFoundErr.Error())
		}

		var persistenceErr *PersistenceError
		if errors.As(err, &persistenceErr) {
			log.Error("http", "persistence failure", map[string]interface{}{
				"path":  ctx.Path(),
				"error": persistenceErr.Error(),
			})
			return ErrorResponse(ctx, fiber.StatusInternalServerError, "Something went wrong, please try again")
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ErrorResponse(ctx, fiberErr.Code, fiberErr.Message)
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ErrorResponse(ctx, fiber.StatusInternalServerError, "Internal server error")
	}
}
