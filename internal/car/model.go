package car

import (
	"net/http"
	"time"

	"github.com/WahidMubarrat/CarBhara/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "car not found")
	ErrMissingFields    = apperror.New(http.StatusBadRequest, "please provide all required fields")
	ErrMissingDocuments = apperror.New(http.StatusBadRequest, "car picture, registration paper, and driving license are required")
	ErrInvalidFare      = apperror.New(http.StatusBadRequest, "hourly fare must be a positive number")
	ErrDocumentNotFound = apperror.New(http.StatusNotFound, "document not found")
	ErrTooManyDocuments = apperror.New(http.StatusBadRequest, "too many documents")
)

// MaxOtherDocuments caps the optional supporting documents per car.
const MaxOtherDocuments = 5

// Car is a rentable listing owned by a businessman. Document fields hold
// public file URLs produced by the upload module.
type Car struct {
	ID                string // UUID
	BusinessmanID     string
	CarName           string
	Model             string
	CarPicture        string
	RegistrationPaper string
	DriverName        string
	DriverPhone       string
	DrivingLicense    string
	OtherDocuments    []string
	HourlyFare        float64
	IsAvailable       bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
