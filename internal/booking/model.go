package booking

import (
	"net/http"
	"time"

	"github.com/WahidMubarrat/CarBhara/internal/pkg/apperror"
)

var (
	ErrNotFound             = apperror.New(http.StatusNotFound, "booking not found")
	ErrCarNotFound          = apperror.New(http.StatusNotFound, "car not found")
	ErrCarUnavailable       = apperror.New(http.StatusConflict, "this car is not currently available")
	ErrMissingFields        = apperror.New(http.StatusBadRequest, "please provide all required fields")
	ErrStartTimePast        = apperror.New(http.StatusBadRequest, "booking date must be in the future")
	ErrInvalidStatus        = apperror.New(http.StatusBadRequest, "invalid status, must be accepted, rejected, or completed")
	ErrTransitionNotAllowed = apperror.New(http.StatusConflict, "booking status transition not allowed")
	ErrInvalidRole          = apperror.New(http.StatusForbidden, "operation not permitted for this role")
)

// Booking is a customer's request to rent a specific car. The customer,
// businessman and car references are fixed at creation; only the status
// (and rejection reason) ever changes, and bookings are never deleted.
//
// HourlyFare is snapshotted from the car at creation so that later price
// edits cannot skew historical revenue.
type Booking struct {
	ID              string // UUID
	CustomerID      string
	BusinessmanID   string
	CarID           string
	StartLocation   string
	EndLocation     string
	StartDateTime   time.Time
	Status          Status
	RejectionReason *string
	HourlyFare      float64
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Display fields resolved by the repository join. Car fields are
	// pointers: the car row may have been deleted after booking.
	CarName     *string
	CarModel    *string
	CarPicture  *string
	DriverName  *string
	DriverPhone *string

	CustomerName  string
	CustomerPhone *string
	CustomerEmail string

	BusinessmanName    string
	BusinessmanPhone   *string
	BusinessmanEmail   string
	BusinessmanAddress *string
}

// Stats counts a principal's bookings by status.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Accepted  int `json:"accepted"`
	Completed int `json:"completed"`
	Rejected  int `json:"rejected"`
}

// CarStat is the per-car breakdown in the businessman analytics view.
type CarStat struct {
	CarName   string `json:"carName"`
	Total     int    `json:"total"`
	Pending   int    `json:"pending"`
	Accepted  int    `json:"accepted"`
	Completed int    `json:"completed"`
	Rejected  int    `json:"rejected"`
}

// History is the derived read-only view over a principal's bookings.
// TotalRevenue, CarStats and MonthlyBookings are only populated for the
// businessman variant.
type History struct {
	Bookings        []*Booking
	Stats           Stats
	TotalRevenue    float64
	CarStats        []CarStat
	MonthlyBookings map[string]int
}
