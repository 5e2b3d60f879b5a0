package routes

import (
	"net/http"

	"phdtrack_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches every handler group under /api/v1.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "phdtrack", "status": "ok"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api/v1")
	{
		h.School.RegisterRoutes(api)
		h.Professor.RegisterRoutes(api)
		h.Application.RegisterRoutes(api)
		h.Document.RegisterRoutes(api)
		h.Email.RegisterRoutes(api)
		h.Notification.RegisterRoutes(api)
	}
}
