package http

import (
	"time"

	"github.com/WahidMubarrat/CarBhara/internal/car"
)

// RemoveDocumentRequest is the payload for DELETE /api/cars/:carId/documents.
type RemoveDocumentRequest struct {
	DocumentURL string `json:"documentUrl" binding:"required"`
}

type CarResponse struct {
	ID                string    `json:"id"`
	BusinessmanID     string    `json:"businessmanId"`
	CarName           string    `json:"carName"`
	Model             string    `json:"model"`
	CarPicture        string    `json:"carPicture"`
	RegistrationPaper string    `json:"registrationPaper"`
	DriverName        string    `json:"driverName"`
	DriverPhone       string    `json:"driverPhone"`
	DrivingLicense    string    `json:"drivingLicense"`
	OtherDocuments    []string  `json:"otherDocuments"`
	HourlyFare        float64   `json:"hourlyFare"`
	IsAvailable       bool      `json:"isAvailable"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func NewCarResponse(c *car.Car) CarResponse {
	docs := c.OtherDocuments
	if docs == nil {
		docs = []string{}
	}
	return CarResponse{
		ID:                c.ID,
		BusinessmanID:     c.BusinessmanID,
		CarName:           c.CarName,
		Model:             c.Model,
		CarPicture:        c.CarPicture,
		RegistrationPaper: c.RegistrationPaper,
		DriverName:        c.DriverName,
		DriverPhone:       c.DriverPhone,
		DrivingLicense:    c.DrivingLicense,
		OtherDocuments:    docs,
		HourlyFare:        c.HourlyFare,
		IsAvailable:       c.IsAvailable,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func newCarResponses(cars []*car.Car) []CarResponse {
	items := make([]CarResponse, len(cars))
	for i, c := range cars {
		items[i] = NewCarResponse(c)
	}
	return items
}
