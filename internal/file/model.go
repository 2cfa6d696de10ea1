package file

import (
	"net/http"
	"time"

	"github.com/WahidMubarrat/CarBhara/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "file not found")
	ErrNoThumbnail = apperror.New(http.StatusNotFound, "thumbnail not available for this file")
	ErrBadType     = apperror.New(http.StatusBadRequest, "invalid file type, only JPEG, PNG and WEBP files are allowed")
	ErrTooLarge    = apperror.New(http.StatusBadRequest, "file exceeds the size limit")
)

// MaxUploadSize limits a single uploaded document (5 MB, matching the
// frontend's expectations).
const MaxUploadSize = 5 << 20

// File is the metadata record for an uploaded car document or picture.
type File struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"` // Internal path
	ThumbnailPath *string   `json:"-"` // Internal path
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// FileURL returns the public URL for accessing a file by its ID.
func FileURL(id string) string {
	return "/files/" + id
}

// ThumbnailURL returns the public URL for accessing a file's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/files/" + id + "/thumbnail"
}
