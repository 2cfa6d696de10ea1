package http

import (
	"time"

	"github.com/WahidMubarrat/CarBhara/internal/booking"
)

// CreateBookingRequest is the payload for POST /api/bookings.
type CreateBookingRequest struct {
	CarID         string    `json:"carId" binding:"required"`
	StartLocation string    `json:"startLocation" binding:"required"`
	EndLocation   string    `json:"endLocation" binding:"required"`
	StartDateTime time.Time `json:"startDateTime" binding:"required"`
}

// UpdateStatusRequest is the payload for PUT /api/bookings/:bookingId/status.
type UpdateStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
}

// CarTag is the resolved car reference embedded in a booking response.
// Fields are pointers because the car may have been deleted since.
type CarTag struct {
	ID          string  `json:"id"`
	CarName     *string `json:"carName"`
	Model       *string `json:"model"`
	CarPicture  *string `json:"carPicture"`
	DriverName  *string `json:"driverName,omitempty"`
	DriverPhone *string `json:"driverPhone,omitempty"`
	HourlyFare  float64 `json:"hourlyFare"`
}

// PartyTag is the resolved customer or businessman reference.
type PartyTag struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullname"`
	Phone    *string `json:"phone"`
	Email    string  `json:"email"`
	Address  *string `json:"address,omitempty"`
}

type BookingResponse struct {
	ID              string    `json:"id"`
	Car             CarTag    `json:"car"`
	Customer        PartyTag  `json:"customer"`
	Businessman     PartyTag  `json:"businessman"`
	StartLocation   string    `json:"startLocation"`
	EndLocation     string    `json:"endLocation"`
	StartDateTime   time.Time `json:"startDateTime"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID: b.ID,
		Car: CarTag{
			ID:          b.CarID,
			CarName:     b.CarName,
			Model:       b.CarModel,
			CarPicture:  b.CarPicture,
			DriverName:  b.DriverName,
			DriverPhone: b.DriverPhone,
			HourlyFare:  b.HourlyFare,
		},
		Customer: PartyTag{
			ID:       b.CustomerID,
			FullName: b.CustomerName,
			Phone:    b.CustomerPhone,
			Email:    b.CustomerEmail,
		},
		Businessman: PartyTag{
			ID:       b.BusinessmanID,
			FullName: b.BusinessmanName,
			Phone:    b.BusinessmanPhone,
			Email:    b.BusinessmanEmail,
			Address:  b.BusinessmanAddress,
		},
		StartLocation:   b.StartLocation,
		EndLocation:     b.EndLocation,
		StartDateTime:   b.StartDateTime,
		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func newBookingResponses(bookings []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return items
}
