package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WahidMubarrat/CarBhara/internal/auth"
	"github.com/WahidMubarrat/CarBhara/internal/booking"
	"github.com/WahidMubarrat/CarBhara/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "please provide all required fields"})
		return
	}

	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		CustomerID:    p.ID,
		CarID:         req.CarID,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		StartDateTime: req.StartDateTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, response.Envelope{
		"message": "booking request sent successfully",
		"booking": NewBookingResponse(b),
	})
}

func (h *Handler) List(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	bookings, err := h.service.ListForPrincipal(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, response.Envelope{
		"bookings": newBookingResponses(bookings),
	})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID := c.Param("bookingId")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), p.ID, bookingID, booking.Status(req.Status), req.RejectionReason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, response.Envelope{
		"message": "booking " + req.Status + " successfully",
		"booking": NewBookingResponse(b),
	})
}

func (h *Handler) History(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	history, err := h.service.History(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}

	fields := response.Envelope{
		"bookings": newBookingResponses(history.Bookings),
		"stats":    history.Stats,
	}
	if p.Role == auth.RoleBusinessman {
		fields["totalRevenue"] = history.TotalRevenue
		fields["carStats"] = history.CarStats
		fields["monthlyBookings"] = history.MonthlyBookings
	}

	response.OK(c, http.StatusOK, fields)
}
