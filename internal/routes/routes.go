package routes

import (
	"net/http"

	"jits_backend/internal/handlers"
	"jits_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers, // <-- Принимаем ГОТОВЫЕ хэндлеры
	guards handlers.Guards,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth и студенты живут под /api
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, guards)
		appHandlers.StudentHandler.RegisterRoutes(api, guards)
	}

	// Остальной контент - от корня
	appHandlers.BlogHandler.RegisterRoutes(ginRouter, guards)
	appHandlers.CourseHandler.RegisterRoutes(ginRouter, guards)
	appHandlers.ServiceCategoryHandler.RegisterRoutes(ginRouter, guards)
	appHandlers.TestimonialHandler.RegisterRoutes(ginRouter, guards)
	appHandlers.SuccessStoryHandler.RegisterRoutes(ginRouter, guards)

	// Только для local/memory хранилища
	if appHandlers.FileHandler != nil {
		appHandlers.FileHandler.RegisterRoutes(ginRouter)
		logger.Info("Local file route /files registered")
	}
}
