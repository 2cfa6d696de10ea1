package http

import (
	"github.com/gin-gonic/gin"

	"github.com/WahidMubarrat/CarBhara/internal/auth"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/cars")
	group.Use(authMiddleware)

	// Customers browse available listings.
	group.GET("/available", h.ListAvailable)

	// Everything else is owner-side.
	owner := auth.RequireRole(auth.RoleBusinessman, "only businessmen can manage cars")
	group.POST("", owner, h.Add)
	group.GET("", owner, h.ListMine)
	group.PUT("/:carId", owner, h.Update)
	group.DELETE("/:carId", owner, h.Delete)
	group.DELETE("/:carId/documents", owner, h.RemoveDocument)
}
