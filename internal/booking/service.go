package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/WahidMubarrat/CarBhara/internal/auth"
	"github.com/WahidMubarrat/CarBhara/internal/car"
)

// CreateRequest carries a customer's booking request.
type CreateRequest struct {
	CustomerID    string
	CarID         string
	StartLocation string
	EndLocation   string
	StartDateTime time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	ListForPrincipal(ctx context.Context, p auth.Principal) ([]*Booking, error)
	UpdateStatus(ctx context.Context, businessmanID, bookingID string, newStatus Status, rejectionReason string) (*Booking, error)
	History(ctx context.Context, p auth.Principal) (*History, error)
}

type service struct {
	repo       Repository
	carService car.Service
}

func NewService(repo Repository, carService car.Service) Service {
	return &service{
		repo:       repo,
		carService: carService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	startLocation := strings.TrimSpace(req.StartLocation)
	endLocation := strings.TrimSpace(req.EndLocation)

	if req.CarID == "" || startLocation == "" || endLocation == "" || req.StartDateTime.IsZero() {
		return nil, ErrMissingFields
	}

	// Start time must be strictly in the future. Validated once here;
	// time passing later never invalidates the booking.
	if !req.StartDateTime.After(time.Now().UTC()) {
		return nil, ErrStartTimePast
	}

	c, err := s.carService.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, car.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	if !c.IsAvailable {
		return nil, ErrCarUnavailable
	}

	b := &Booking{
		CustomerID:    req.CustomerID,
		BusinessmanID: c.BusinessmanID, // denormalized, never re-derived
		CarID:         c.ID,
		StartLocation: startLocation,
		EndLocation:   endLocation,
		StartDateTime: req.StartDateTime,
		Status:        StatusPending,
		HourlyFare:    c.HourlyFare, // fare snapshot
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Re-read to resolve display fields for the response.
	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) ListForPrincipal(ctx context.Context, p auth.Principal) ([]*Booking, error) {
	switch p.Role {
	case auth.RoleCustomer:
		return s.repo.ListByCustomer(ctx, p.ID)
	case auth.RoleBusinessman:
		return s.repo.ListByBusinessman(ctx, p.ID)
	default:
		return nil, ErrInvalidRole
	}
}

func (s *service) UpdateStatus(ctx context.Context, businessmanID, bookingID string, newStatus Status, rejectionReason string) (*Booking, error) {
	// "pending" is not a valid target: a booking can never move back.
	if newStatus != StatusAccepted && newStatus != StatusRejected && newStatus != StatusCompleted {
		return nil, ErrInvalidStatus
	}

	// Ownership-scoped fetch: a businessman cannot see, let alone
	// mutate, another owner's booking.
	b, err := s.repo.GetByIDForOwner(ctx, bookingID, businessmanID)
	if err != nil {
		return nil, err
	}

	if !b.Status.CanTransitionTo(newStatus) {
		return nil, ErrTransitionNotAllowed
	}

	b.Status = newStatus
	if newStatus == StatusRejected {
		if reason := strings.TrimSpace(rejectionReason); reason != "" {
			b.RejectionReason = &reason
		}
	}

	if err := s.repo.UpdateStatus(ctx, b); err != nil {
		return nil, err
	}

	// Re-read so the response carries the persisted updated_at.
	return s.repo.GetByIDForOwner(ctx, bookingID, businessmanID)
}

func (s *service) History(ctx context.Context, p auth.Principal) (*History, error) {
	bookings, err := s.ListForPrincipal(ctx, p)
	if err != nil {
		return nil, err
	}

	h := &History{
		Bookings: bookings,
		Stats:    ComputeStats(bookings),
	}

	if p.Role == auth.RoleBusinessman {
		h.TotalRevenue = ComputeTotalRevenue(bookings)
		h.CarStats = ComputeCarStats(bookings)
		h.MonthlyBookings = ComputeMonthlyBookings(bookings)
	}

	return h, nil
}
