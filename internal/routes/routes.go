package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/gigwork/internal/config"
	"github.com/example/gigwork/internal/handlers"
	"github.com/example/gigwork/internal/middleware"
	"github.com/example/gigwork/internal/models"
	"github.com/example/gigwork/internal/repository"
	"github.com/example/gigwork/internal/services"
	"github.com/example/gigwork/internal/storage"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) error {
	fileStore, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		return err
	}

	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	accountRepo := repository.NewAccountRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)

	accountService := services.NewAccountService(accountRepo)
	profileService := services.NewProfileService(profileRepo)
	workerService := services.NewWorkerService(accountRepo, workerRepo, telegram)
	documentService := services.NewDocumentService(accountRepo, workerRepo, documentRepo, fileStore, telegram)
	verificationService := services.NewVerificationService(adminRepo, verificationRepo)

	authHandler := handlers.NewAuthHandler(accountService, cfg)
	profileHandler := handlers.NewProfileHandler(profileService)
	workerHandler := handlers.NewWorkerHandler(workerService, documentService)
	adminHandler := handlers.NewAdminHandler(workerService, verificationService)

	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/me", authHandler.Me)
	protected.Delete("/profile/delete", authHandler.DeleteAccount)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Patch("/profile", profileHandler.UpdateProfile)
	protected.Get("/profile/locations", profileHandler.ListLocations)
	protected.Post("/profile/locations", profileHandler.CreateLocation)
	protected.Delete("/profile/locations/:id", profileHandler.DeleteLocation)

	protected.Post("/become-worker", workerHandler.BecomeWorker)
	protected.Get("/worker/profile", workerHandler.GetWorkerProfile)
	protected.Patch("/worker/profile", workerHandler.UpdateWorkerProfile)
	protected.Get("/worker/documents", workerHandler.ListDocuments)
	protected.Post("/worker/documents/upload", workerHandler.UploadDocument)

	// Admin-only verification surface
	admin := protected.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	admin.Get("/workers", adminHandler.ListWorkers)
	admin.Post("/workers/:id/verify", adminHandler.VerifyWorker)
	admin.Post("/workers/:id/reject", adminHandler.RejectWorker)
	admin.Post("/documents/:id/verify", adminHandler.VerifyDocument)
	admin.Post("/documents/:id/reject", adminHandler.RejectDocument)

	return nil
}
