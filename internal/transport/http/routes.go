package http

import (
	"github.com/gin-gonic/gin"

	"github.com/synzk/hub-backend/internal/handler"
)

func loadAPIRoutes(r *gin.Engine, h *handler.Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.HealthHandler.Basic)
		api.POST("/swap", h.SwapHandler.Create)
		api.GET("/status/:id", h.SwapHandler.GetStatus)
		api.GET("/swaps", h.SwapHandler.List)
		api.POST("/swaps/:id/advance", h.SwapHandler.Advance)
	}
}
