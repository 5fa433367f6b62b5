package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the event API under /api.
func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/eventos", h.ListEvents)
		api.POST("/eventos", h.CreateEvent)
		api.GET("/eventos/:id", h.GetEvent)
		api.PUT("/eventos/:id", h.UpdateEvent)
		api.DELETE("/eventos/:id", h.DeleteEvent)
		api.POST("/eventos/cleanup", h.CleanupEvents)

		api.GET("/relatorios/mensal", h.MonthlyReport)
		api.GET("/relatorios/anual", h.AnnualReport)
		api.GET("/dashboard", h.Dashboard)
	}
}
