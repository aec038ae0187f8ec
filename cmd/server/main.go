package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/gigwork/internal/config"
	"github.com/example/gigwork/internal/database"
	"github.com/example/gigwork/internal/handlers"
	"github.com/example/gigwork/internal/logger"
	"github.com/example/gigwork/internal/routes"
)

func main() {
	logger.Init()
	log := logger.Get()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	app := fiber.New(fiber.Config{
		AppName:      "Gigwork Accounts Backend",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	if err := routes.Register(app, db, cfg); err != nil {
		log.WithError(err).Fatal("failed to register routes")
	}

	log.WithField("port", cfg.AppPort).Info("starting server")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.WithError(err).Fatal("fiber.Listen error")
	}
}
