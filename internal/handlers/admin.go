package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/gigwork/internal/middleware"
	"github.com/example/gigwork/internal/models"
	"github.com/example/gigwork/internal/services"
	"github.com/example/gigwork/internal/utils"
)

// AdminHandler exposes the verification review queue and the verify/reject
// actions.
type AdminHandler struct {
	workers       *services.WorkerService
	verifications *services.VerificationService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(workers *services.WorkerService, verifications *services.VerificationService) *AdminHandler {
	return &AdminHandler{workers: workers, verifications: verifications}
}

// ListWorkers returns worker records filtered by verification status.
func (h *AdminHandler) ListWorkers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	status := models.VerificationStatus(c.Query("status"))

	workers, total, err := h.workers.ListByStatus(status, pg)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    workers,
		"meta": fiber.Map{
			"page":  pg.Page,
			"limit": pg.Limit,
			"total": total,
		},
	})
}

// VerifyWorker marks a worker record Verified.
func (h *AdminHandler) VerifyWorker(c *fiber.Ctx) error {
	return h.verify(c, services.RecordWorker)
}

// RejectWorker marks a worker record Rejected with a reason.
func (h *AdminHandler) RejectWorker(c *fiber.Ctx) error {
	return h.reject(c, services.RecordWorker)
}

// VerifyDocument marks an identity document Verified.
func (h *AdminHandler) VerifyDocument(c *fiber.Ctx) error {
	return h.verify(c, services.RecordDocument)
}

// RejectDocument marks an identity document Rejected with a reason.
func (h *AdminHandler) RejectDocument(c *fiber.Ctx) error {
	return h.reject(c, services.RecordDocument)
}

func (h *AdminHandler) verify(c *fiber.Ctx, kind services.RecordKind) error {
	adminID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid record id")
	}

	if err := h.verifications.Verify(kind, recordID, adminID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "record verified"})
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) reject(c *fiber.Ctx, kind services.RecordKind) error {
	adminID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid record id")
	}

	var req rejectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.verifications.Reject(kind, recordID, adminID, req.Reason); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "record rejected"})
}
