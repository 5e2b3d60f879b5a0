package app

import (
	"context"
	"fmt"
	"time"

	"phdtrack_backend/internal/config"
	"phdtrack_backend/internal/email"
	"phdtrack_backend/internal/handlers"
	"phdtrack_backend/internal/logger"
	"phdtrack_backend/internal/middleware"
	"phdtrack_backend/internal/models"
	"phdtrack_backend/internal/routes"
	"phdtrack_backend/internal/services"
	"phdtrack_backend/internal/storage"
	"phdtrack_backend/internal/validator"
	"phdtrack_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the whole application: config, logging, database, dependency
// wiring, the optional deadline worker and finally the HTTP server.
func Run() error {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access database pool: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}

	templates := email.NewTemplateManager()
	if cfg.Email.TemplatesDir != "" {
		if err := templates.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
			logger.Warn("failed to load email templates from disk, using built-ins",
				"dir", cfg.Email.TemplatesDir, "error", err.Error())
		}
	}

	container := services.NewServiceContainer(store, templates)

	router := SetupRouter(db, container, cfg.Server.Env)

	if cfg.Notifications.ScanIntervalHours > 0 {
		worker := workers.NewDeadlineWorker(
			db,
			container.NotificationService,
			time.Duration(cfg.Notifications.ScanIntervalHours)*time.Hour,
			cfg.Notifications.DeadlineThresholdDays,
		)
		go worker.Start(context.Background())
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the gin engine with the full middleware chain and all
// routes registered. Split out so tests can run the router against their own
// database handle.
func SetupRouter(db *gorm.DB, container *services.ServiceContainer, env string) *gin.Engine {
	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	v := validator.New()
	appHandlers := handlers.NewAppHandlers(container, v)
	routes.RegisterRoutes(router, appHandlers)

	return router
}
