package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/gigwork/internal/config"
	"github.com/example/gigwork/internal/middleware"
	"github.com/example/gigwork/internal/models"
	"github.com/example/gigwork/internal/services"
	"github.com/example/gigwork/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	accounts *services.AccountService
	cfg      *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(accounts *services.AccountService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{accounts: accounts, cfg: cfg}
}

// Register creates a new account with role User and an empty profile.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	account, err := h.accounts.Register(req)
	if err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, account.ID, account.Role, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    accountResponse(account),
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an existing account.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	account, err := h.accounts.GetByEmail(req.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	if !utils.CheckPassword(account.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, account.ID, account.Role, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    accountResponse(account),
		"token":   token,
	})
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	account, err := h.accounts.Get(accountID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    accountResponse(account),
	})
}

// DeleteAccount removes the authenticated account and everything it owns.
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	accountID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.accounts.Delete(accountID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "account deleted successfully",
	})
}

func accountResponse(account *models.Account) fiber.Map {
	return fiber.Map{
		"id":            account.ID,
		"email":         account.Email,
		"handle":        account.Handle,
		"first_name":    account.FirstName,
		"last_name":     account.LastName,
		"phone":         account.Phone,
		"role":          account.Role,
		"profile_image": account.ProfileImage,
		"is_verified":   account.IsVerified,
		"created_at":    account.CreatedAt,
	}
}
