package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WahidMubarrat/CarBhara/internal/pkg/apperror"
)

// Envelope is the standard success payload: {"success":true, ...fields}.
// Extra fields are merged in at the top level, matching the API contract
// consumed by the frontend.
type Envelope map[string]any

// OK sends a success envelope with the given status code.
func OK(c *gin.Context, code int, fields Envelope) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(code, body)
}

// Error sends a failure envelope: {"success":false, "message":...}.
// AppError values map to their status code and message; anything else is
// logged and reported as an opaque 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"success": false, "message": appErr.Message})
		return
	}

	log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
}
