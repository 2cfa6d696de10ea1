package http

import (
	"github.com/gin-gonic/gin"

	"github.com/WahidMubarrat/CarBhara/internal/auth"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)

	customerOnly := func(msg string) gin.HandlerFunc { return auth.RequireRole(auth.RoleCustomer, msg) }
	businessmanOnly := func(msg string) gin.HandlerFunc { return auth.RequireRole(auth.RoleBusinessman, msg) }

	group.POST("", customerOnly("only customers can create bookings"), h.Create)
	group.GET("/customer", customerOnly("only customers can view their bookings"), h.List)
	group.GET("/customer/history", customerOnly("only customers can view their booking history"), h.History)

	group.GET("/businessman", businessmanOnly("only businessmen can view booking requests"), h.List)
	group.GET("/businessman/history", businessmanOnly("only businessmen can view their booking history"), h.History)
	group.PUT("/:bookingId/status", businessmanOnly("only businessmen can update booking status"), h.UpdateStatus)
}
