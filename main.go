package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"portal-calma/internal/config"
	"portal-calma/internal/database"
	logger "portal-calma/internal/logging"
	"portal-calma/internal/models"
	"portal-calma/internal/router"
	"portal-calma/internal/services"
)

func main() {
	// Bootstrap logger with rotation defaults; config is not loaded yet.
	log, err := logger.Init(".", logger.FileSettings{})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Rebuild the logger with the configured rotation settings.
	log.Sync()
	log, err = logger.Init(".", logger.FileSettings{
		Directory:  config.Conf.Logging.Directory,
		MaxSize:    config.Conf.Logging.MaxSize,
		MaxBackups: config.Conf.Logging.MaxBackups,
		MaxAge:     config.Conf.Logging.MaxAge,
		Compress:   config.Conf.Logging.Compress,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize Database
	database.Init(log)

	// Load questionnaire templates at startup
	templates, err := models.LoadTemplates(config.Conf.Templates.Path)
	if err != nil {
		log.Fatal("Failed to load questionnaire templates", zap.Error(err))
	}

	// Start the questionnaire notification scheduler
	if config.Conf.Scheduler.Enabled {
		emailService := services.NewEmailService(log)
		notifier := services.NewNotifier(log, emailService,
			time.Duration(config.Conf.Scheduler.IntervalSeconds)*time.Second)
		notifier.Start(context.Background())
	}

	// Setup router, passing the logger to it
	r := router.Setup(log, templates)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
