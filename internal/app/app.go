package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillnet_backend/database"
	"skillnet_backend/internal/config"
	"skillnet_backend/internal/email"
	"skillnet_backend/internal/handlers"
	"skillnet_backend/internal/logger"
	"skillnet_backend/internal/middleware"
	"skillnet_backend/internal/repositories"
	"skillnet_backend/internal/routes"
	"skillnet_backend/internal/services"
	"skillnet_backend/internal/validator"
	"skillnet_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	cleanup := workers.NewTokenCleanupWorker(gormDB, repositories.NewRefreshTokenRepository())
	cleanup.Start(context.Background())

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(cfg.Email)
	} else {
		logger.Warn("SMTP is not configured, email alerts are disabled")
		emailProvider = email.NoopProvider{}
	}

	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	projectRepo := repositories.NewProjectRepository()
	messageRepo := repositories.NewMessageRepository()
	feedbackRepo := repositories.NewFeedbackRepository()

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo, refreshTokenRepo, &cfg.JWT),
		UserService:     services.NewUserService(userRepo),
		ProjectService:  services.NewProjectService(projectRepo, userRepo),
		MessageService:  services.NewMessageService(messageRepo, userRepo),
		FeedbackService: services.NewFeedbackService(feedbackRepo, emailProvider, cfg.Email),
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:     handlers.NewUserHandler(baseHandler, container.UserService, &cfg.JWT),
		ProjectHandler:  handlers.NewProjectHandler(baseHandler, container.ProjectService, &cfg.JWT),
		MessageHandler:  handlers.NewMessageHandler(baseHandler, container.MessageService, &cfg.JWT),
		FeedbackHandler: handlers.NewFeedbackHandler(baseHandler, container.FeedbackService, &cfg.JWT),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
