package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"totl_backend/internal/handlers"
)

// Register mounts every handler under /api/v1.
func Register(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	h.Auth.RegisterRoutes(api)
	h.Gig.RegisterRoutes(api)
	h.Application.RegisterRoutes(api)
	h.ClientApplication.RegisterRoutes(api)
	h.Profile.RegisterRoutes(api)
	h.Moderation.RegisterRoutes(api)
}
