package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/gigwork/internal/middleware"
	"github.com/example/gigwork/internal/services"
)

// ProfileHandler manages profile and saved-location endpoints.
type ProfileHandler struct {
	profiles *services.ProfileService
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile returns the authenticated account's profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := h.profiles.Get(accountID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": profile})
}

// UpdateProfile applies a partial update to the profile.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req services.ProfileUpdateInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := h.profiles.Update(accountID, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": profile})
}

// ListLocations returns the caller's saved locations.
func (h *ProfileHandler) ListLocations(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	locations, err := h.profiles.ListLocations(accountID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": locations})
}

// CreateLocation saves a new labelled location.
func (h *ProfileHandler) CreateLocation(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req services.LocationInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	location, err := h.profiles.AddLocation(accountID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": location})
}

// DeleteLocation removes a saved location owned by the caller.
func (h *ProfileHandler) DeleteLocation(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	locationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid location id")
	}

	if err := h.profiles.RemoveLocation(accountID, locationID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "location deleted"})
}
