package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public file endpoints at the engine root;
// document URLs stored on cars point here.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	group := r.Group("/files")
	{
		group.GET("/:id", h.Download)
		group.GET("/:id/thumbnail", h.DownloadThumbnail)
	}
}
