package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/gigwork/internal/apperrors"
	"github.com/example/gigwork/internal/logger"
)

// statusByKind maps the error taxonomy onto HTTP statuses.
var statusByKind = map[apperrors.Kind]int{
	apperrors.KindValidation:   fiber.StatusBadRequest,
	apperrors.KindNotFound:     fiber.StatusNotFound,
	apperrors.KindInvalidState: fiber.StatusConflict,
	apperrors.KindConflict:     fiber.StatusConflict,
	apperrors.KindPermission:   fiber.StatusForbidden,
	apperrors.KindStorage:      fiber.StatusBadGateway,
}

// ErrorHandler renders application errors as structured JSON envelopes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		status := statusByKind[appErr.Kind]
		if status == 0 {
			status = fiber.StatusInternalServerError
		}
		if appErr.Kind == apperrors.KindStorage {
			logger.Get().WithError(appErr.Err).Error("storage failure")
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error": fiber.Map{
				"kind":    appErr.Kind,
				"field":   appErr.Field,
				"message": appErr.Message,
			},
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"error":   fiber.Map{"message": fiberErr.Message},
		})
	}

	logger.Get().WithError(err).Error("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   fiber.Map{"message": "internal server error"},
	})
}
