package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WahidMubarrat/CarBhara/internal/file"
	"github.com/WahidMubarrat/CarBhara/internal/pkg/response"
)

type Handler struct {
	service file.Service
}

func NewHandler(service file.Service) *Handler {
	return &Handler{service: service}
}

// GET /files/:id
func (h *Handler) Download(c *gin.Context) {
	stream, f, err := h.service.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Disposition", `inline; filename="`+f.Filename+`"`)
	c.DataFromReader(http.StatusOK, f.Size, f.ContentType, stream, nil)
}

// GET /files/:id/thumbnail
func (h *Handler) DownloadThumbnail(c *gin.Context) {
	stream, _, err := h.service.DownloadThumbnail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}
