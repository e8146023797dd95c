package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"jits_backend/database"
	_ "jits_backend/docs"
	"jits_backend/internal/config"
	"jits_backend/internal/email"
	"jits_backend/internal/handlers"
	"jits_backend/internal/logger"
	"jits_backend/internal/middleware"
	"jits_backend/internal/routes"
	"jits_backend/internal/services"
	"jits_backend/internal/storage"
	"jits_backend/internal/validator"
	"jits_backend/internal/workers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
	}

	storageInstance, err := newStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailProvider, err := newEmailProvider(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ginRouter, serviceContainer := SetupRouter(cfg, gormDB, storageInstance, emailProvider)

	if err := serviceContainer.AuthService.SeedFirstAdmin(ctx, gormDB, cfg.FirstAdminEmail, cfg.FirstAdminPassword); err != nil {
		// Если не удалось создать админа - не запускаем сервер
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	resetWorker := workers.NewResetTokenWorker(gormDB, serviceContainer.UserRepository, cfg.Auth.ResetCleanupSchedule)
	if err := resetWorker.Start(ctx); err != nil {
		logger.Fatal("Failed to start reset token worker", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("Server starting on %s", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Server exited")
}

// SetupRouter собирает сервисы, хэндлеры и маршруты поверх готовых БД, хранилища и почты
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage, emailProvider email.Provider) (*gin.Engine, *services.ServiceContainer) {
	customValidator := validator.New(cfg.Auth.PhoneDefaultRegion)

	// 1. Инициализируем сервисы
	serviceContainer := services.NewServiceContainer(cfg, storageInstance, emailProvider, customValidator)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer, storageInstance, customValidator)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	guards := handlers.Guards{
		Auth:      middleware.AuthMiddleware(serviceContainer.Tokens),
		Admin:     middleware.RequireAdmin(),
		RateLimit: middleware.RateLimit(middleware.NewIPRateLimiter(cfg.Auth.RateLimitRPS, cfg.Auth.RateLimitBurst)),
	}

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers, guards)
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return ginRouter, serviceContainer
}

func initializeHandlers(cfg *config.Config, services *services.ServiceContainer, storageInstance storage.Storage, v *validator.Validator) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(v)

	appHandlers := &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, services.AuthService, handlers.CookieSettings{
			Secure: cfg.IsProduction(),
			MaxAge: cfg.JWT.TTL,
		}),
		BlogHandler:            handlers.NewBlogHandler(baseHandler, services.BlogService),
		CourseHandler:          handlers.NewCourseHandler(baseHandler, services.CourseService),
		ServiceCategoryHandler: handlers.NewServiceCategoryHandler(baseHandler, services.ServiceCategoryService),
		StudentHandler:         handlers.NewStudentHandler(baseHandler, services.StudentService),
		TestimonialHandler:     handlers.NewTestimonialHandler(baseHandler, services.TestimonialService),
		SuccessStoryHandler:    handlers.NewSuccessStoryHandler(baseHandler, services.SuccessStoryService),
	}

	// S3 раздает файлы сам
	if reader, ok := storageInstance.(storage.Reader); ok {
		appHandlers.FileHandler = handlers.NewFileHandler(baseHandler, reader)
	}
	return appHandlers
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = 32 << 20
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins()))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	return storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
}

// newEmailProvider - SMTP через gomail. Без SMTP_HOST письма только пишутся в лог.
func newEmailProvider(cfg *config.Config) (email.Provider, error) {
	templates, err := email.NewDefaultTemplateManager()
	if err != nil {
		return nil, err
	}

	if cfg.Email.SMTPHost == "" {
		if cfg.IsProduction() {
			return nil, errors.New("SMTP_HOST is required in production")
		}
		logger.Warn("SMTP_HOST is not set, emails are recorded and not delivered")
		return email.NewRecordingProvider(templates), nil
	}

	provider := email.NewGomailProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}, templates)
	if err := provider.Validate(); err != nil {
		return nil, err
	}
	return provider, nil
}
