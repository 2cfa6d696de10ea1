package http

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WahidMubarrat/CarBhara/internal/auth"
	"github.com/WahidMubarrat/CarBhara/internal/car"
	"github.com/WahidMubarrat/CarBhara/internal/pkg/response"
)

type Handler struct {
	service car.Service
}

func NewHandler(service car.Service) *Handler {
	return &Handler{service: service}
}

// formFile returns the first uploaded file for the given field, or nil.
func formFile(form *multipart.Form, field string) *multipart.FileHeader {
	if files := form.File[field]; len(files) > 0 {
		return files[0]
	}
	return nil
}

func (h *Handler) Add(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid multipart form"})
		return
	}

	hourlyFare, err := strconv.ParseFloat(c.PostForm("hourlyFare"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "hourly fare must be a number"})
		return
	}

	created, err := h.service.Add(c.Request.Context(), p.ID, car.AddRequest{
		CarName:           c.PostForm("carName"),
		Model:             c.PostForm("model"),
		DriverName:        c.PostForm("driverName"),
		DriverPhone:       c.PostForm("driverPhone"),
		HourlyFare:        hourlyFare,
		CarPicture:        formFile(form, "carPicture"),
		RegistrationPaper: formFile(form, "registrationPaper"),
		DrivingLicense:    formFile(form, "drivingLicense"),
		OtherDocuments:    form.File["otherDocuments"],
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, response.Envelope{
		"message": "car added successfully",
		"car":     NewCarResponse(created),
	})
}

func (h *Handler) ListMine(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	cars, err := h.service.ListByOwner(c.Request.Context(), p.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, response.Envelope{"cars": newCarResponses(cars)})
}

func (h *Handler) ListAvailable(c *gin.Context) {
	cars, err := h.service.ListAvailable(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, response.Envelope{"cars": newCarResponses(cars)})
}

func (h *Handler) Update(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	carID := c.Param("carId")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid multipart form"})
		return
	}

	req := car.UpdateRequest{
		CarPicture:        formFile(form, "carPicture"),
		RegistrationPaper: formFile(form, "registrationPaper"),
		DrivingLicense:    formFile(form, "drivingLicense"),
		OtherDocuments:    form.File["otherDocuments"],
	}

	// Absent form fields mean "leave untouched".
	if v, ok := c.GetPostForm("carName"); ok {
		req.CarName = &v
	}
	if v, ok := c.GetPostForm("model"); ok {
		req.Model = &v
	}
	if v, ok := c.GetPostForm("driverName"); ok {
		req.DriverName = &v
	}
	if v, ok := c.GetPostForm("driverPhone"); ok {
		req.DriverPhone = &v
	}
	if v, ok := c.GetPostForm("hourlyFare"); ok {
		fare, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "hourly fare must be a number"})
			return
		}
		req.HourlyFare = &fare
	}
	if v, ok := c.GetPostForm("isAvailable"); ok {
		avail, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "isAvailable must be a boolean"})
			return
		}
		req.IsAvailable = &avail
	}

	updated, err := h.service.Update(c.Request.Context(), p.ID, carID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, response.Envelope{
		"message": "car updated successfully",
		"car":     NewCarResponse(updated),
	})
}

func (h *Handler) Delete(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), p.ID, c.Param("carId")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, response.Envelope{"message": "car deleted successfully"})
}

func (h *Handler) RemoveDocument(c *gin.Context) {
	var req RemoveDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "document url is required"})
		return
	}

	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	updated, err := h.service.RemoveDocument(c.Request.Context(), p.ID, c.Param("carId"), req.DocumentURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, response.Envelope{
		"message": "document removed successfully",
		"car":     NewCarResponse(updated),
	})
}
