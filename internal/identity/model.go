package identity

import (
	"net/http"
	"time"

	"github.com/WahidMubarrat/CarBhara/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "user already exists")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "invalid role type")
	ErrMissingFields      = apperror.New(http.StatusBadRequest, "missing required fields")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
)

// Customer is a principal that books cars.
type Customer struct {
	ID             string // UUID
	FullName       string
	Email          string
	PasswordHash   string
	Age            *int
	Address        *string
	Phone          *string
	ProfilePicture *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Businessman is a principal that owns cars and answers booking requests.
type Businessman struct {
	ID           string // UUID
	FullName     string
	Email        string
	PasswordHash string
	CompanyName  *string
	Address      *string
	Phone        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
