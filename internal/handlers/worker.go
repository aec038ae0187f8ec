package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/gigwork/internal/middleware"
	"github.com/example/gigwork/internal/models"
	"github.com/example/gigwork/internal/services"
)

// WorkerHandler manages worker onboarding, worker records and identity
// documents.
type WorkerHandler struct {
	workers   *services.WorkerService
	documents *services.DocumentService
}

// NewWorkerHandler constructs WorkerHandler.
func NewWorkerHandler(workers *services.WorkerService, documents *services.DocumentService) *WorkerHandler {
	return &WorkerHandler{workers: workers, documents: documents}
}

// BecomeWorker performs the user-to-worker role transition.
func (h *WorkerHandler) BecomeWorker(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req services.BecomeWorkerInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	worker, err := h.workers.BecomeWorker(accountID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": worker})
}

// GetWorkerProfile returns the caller's worker record.
func (h *WorkerHandler) GetWorkerProfile(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	worker, err := h.workers.Get(accountID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": worker})
}

// UpdateWorkerProfile applies a partial update to the worker record.
func (h *WorkerHandler) UpdateWorkerProfile(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req services.WorkerUpdateInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	worker, err := h.workers.Update(accountID, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": worker})
}

// ListDocuments returns the caller's submitted identity documents.
func (h *WorkerHandler) ListDocuments(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	docs, err := h.documents.List(accountID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": docs})
}

// UploadDocument accepts a multipart identity-document submission.
func (h *WorkerHandler) UploadDocument(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	fileHeader, err := c.FormFile("document_file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "document_file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not read document_file")
	}
	defer file.Close()

	in := services.DocumentInput{
		DocumentType:   models.DocumentType(c.FormValue("document_type")),
		DocumentNumber: c.FormValue("document_number"),
	}

	doc, err := h.documents.Upload(accountID, in, fileHeader.Filename, file)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": doc})
}
