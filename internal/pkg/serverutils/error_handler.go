package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/apperror"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/logger"
)

// ErrorHandlerMiddleware turns typed application errors into the
// `{error, code}` response body. The message text stays compatible with the
// original API; the code is the stable machine-readable addition.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			details := map[string]interface{}{
				"code":   appErr.Code,
				"path":   ctx.Path(),
				"method": ctx.Method(),
			}
			if appErr.Err != nil {
				details["error"] = appErr.Err.Error()
			}
			if appErr.Status >= fiber.StatusInternalServerError {
				log.Error("http", appErr.Message, details)
			} else {
				log.Warn("http", appErr.Message, details)
			}
			return ctx.Status(appErr.Status).JSON(fiber.Map{
				"error": appErr.Message,
				"code":  appErr.Code,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"error": fiberErr.Message,
				"code":  codeForStatus(fiberErr.Code),
			})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"error":  err.Error(),
			"path":   ctx.Path(),
			"method": ctx.Method(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
			"code":  apperror.CodeInternal,
		})
	}
}

// codeForStatus maps framework error statuses to stable codes so routing
// errors are distinguishable from handler failures.
func codeForStatus(status int) string {
	switch {
	case status == fiber.StatusNotFound:
		return apperror.CodeNotFound
	case status == fiber.StatusMethodNotAllowed:
		return apperror.CodeMethodNotAllowed
	case status >= fiber.StatusBadRequest && status < fiber.StatusInternalServerError:
		return apperror.CodeValidation
	default:
		return apperror.CodeInternal
	}
}
