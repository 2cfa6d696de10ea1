package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WahidMubarrat/CarBhara/internal/auth"
	"github.com/WahidMubarrat/CarBhara/internal/car"
)

// mockRepository keeps bookings in a map and hands out copies, so a
// service-side mutation only sticks after an explicit UpdateStatus.
type mockRepository struct {
	mu       sync.Mutex
	bookings map[string]*Booking
	nextID   int
	err      error
}

func newMockRepository() *mockRepository {
	return &mockRepository{bookings: make(map[string]*Booking)}
}

func (m *mockRepository) Create(_ context.Context, b *Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	b.ID = fmt.Sprintf("booking-%d", m.nextID)
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	stored := *b
	m.bookings[b.ID] = &stored
	return nil
}

func (m *mockRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *mockRepository) GetByIDForOwner(_ context.Context, id, businessmanID string) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok || b.BusinessmanID != businessmanID {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *mockRepository) ListByCustomer(_ context.Context, customerID string) ([]*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Booking, 0)
	for _, b := range m.bookings {
		if b.CustomerID == customerID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockRepository) ListByBusinessman(_ context.Context, businessmanID string) ([]*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Booking, 0)
	for _, b := range m.bookings {
		if b.BusinessmanID == businessmanID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockRepository) UpdateStatus(_ context.Context, b *Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	stored, ok := m.bookings[b.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Status = b.Status
	stored.RejectionReason = b.RejectionReason
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

// mockCarService only backs GetByID; the booking service never calls
// the listing mutations.
type mockCarService struct {
	cars map[string]*car.Car
}

func newMockCarService(cars ...*car.Car) *mockCarService {
	m := &mockCarService{cars: make(map[string]*car.Car)}
	for _, c := range cars {
		m.cars[c.ID] = c
	}
	return m
}

func (m *mockCarService) GetByID(_ context.Context, id string) (*car.Car, error) {
	c, ok := m.cars[id]
	if !ok {
		return nil, car.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCarService) Add(context.Context, string, car.AddRequest) (*car.Car, error) {
	return nil, nil
}

func (m *mockCarService) ListByOwner(context.Context, string) ([]*car.Car, error) {
	return nil, nil
}

func (m *mockCarService) ListAvailable(context.Context) ([]*car.Car, error) {
	return nil, nil
}

func (m *mockCarService) Update(context.Context, string, string, car.UpdateRequest) (*car.Car, error) {
	return nil, nil
}

func (m *mockCarService) Delete(context.Context, string, string) error {
	return nil
}

func (m *mockCarService) RemoveDocument(context.Context, string, string, string) (*car.Car, error) {
	return nil, nil
}

func testCar() *car.Car {
	return &car.Car{
		ID:            "car-1",
		BusinessmanID: "bm-1",
		CarName:       "Corolla",
		Model:         "2020",
		HourlyFare:    500,
		IsAvailable:   true,
	}
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		CustomerID:    "cu-1",
		CarID:         "car-1",
		StartLocation: "Dhanmondi",
		EndLocation:   "Uttara",
		StartDateTime: time.Now().UTC().Add(24 * time.Hour),
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, newMockCarService(testCar()))

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, "cu-1", b.CustomerID)
	assert.Equal(t, "bm-1", b.BusinessmanID)
	assert.Equal(t, "car-1", b.CarID)
	assert.Equal(t, 500.0, b.HourlyFare)
	assert.Nil(t, b.RejectionReason)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := NewService(newMockRepository(), newMockCarService(testCar()))
	ctx := context.Background()

	req := validCreateRequest()
	req.StartLocation = "   "
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrMissingFields)

	req = validCreateRequest()
	req.StartDateTime = time.Time{}
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrMissingFields)

	req = validCreateRequest()
	req.StartDateTime = time.Now().UTC().Add(-time.Hour)
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrStartTimePast)

	req = validCreateRequest()
	req.CarID = "car-unknown"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestCreateBookingUnavailableCar(t *testing.T) {
	c := testCar()
	c.IsAvailable = false
	svc := NewService(newMockRepository(), newMockCarService(c))

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrCarUnavailable)
}

func TestFareSnapshotSurvivesPriceEdit(t *testing.T) {
	repo := newMockRepository()
	cars := newMockCarService(testCar())
	svc := NewService(repo, cars)
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// Owner doubles the fare after the booking exists.
	cars.cars["car-1"].HourlyFare = 1000

	_, err = svc.UpdateStatus(ctx, "bm-1", b.ID, StatusAccepted, "")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, "bm-1", b.ID, StatusCompleted, "")
	require.NoError(t, err)

	h, err := svc.History(ctx, auth.Principal{ID: "bm-1", Role: auth.RoleBusinessman})
	require.NoError(t, err)
	assert.Equal(t, 500.0, h.TotalRevenue)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, newMockCarService(testCar()))
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	accepted, err := svc.UpdateStatus(ctx, "bm-1", b.ID, StatusAccepted, "")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, accepted.Status)

	completed, err := svc.UpdateStatus(ctx, "bm-1", b.ID, StatusCompleted, "")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)

	// Terminal: nothing moves a completed booking.
	_, err = svc.UpdateStatus(ctx, "bm-1", b.ID, StatusRejected, "")
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
	_, err = svc.UpdateStatus(ctx, "bm-1", b.ID, StatusAccepted, "")
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
}

func TestUpdateStatusReturnsPersistedBooking(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, newMockCarService(testCar()))
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	accepted, err := svc.UpdateStatus(ctx, "bm-1", b.ID, StatusAccepted, "")
	require.NoError(t, err)

	// The returned booking is the re-read row, not the in-memory copy:
	// it carries the update timestamp the repository wrote.
	stored, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Status, accepted.Status)
	assert.True(t, accepted.UpdatedAt.Equal(stored.UpdatedAt))
	assert.False(t, accepted.UpdatedAt.Before(stored.CreatedAt))
}

func TestUpdateStatusIllegalEdges(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, newMockCarService(testCar()))
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// pending -> completed skips acceptance.
	_, err = svc.UpdateStatus(ctx, "bm-1", b.ID, StatusCompleted, "")
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)

	// "pending" is never a valid target.
	_, err = svc.UpdateStatus(ctx, "bm-1", b.ID, StatusPending, "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = svc.UpdateStatus(ctx, "bm-1", b.ID, Status("cancelled"), "")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// Booking state is untouched by the refused attempts.
	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}

func TestUpdateStatusOwnershipScoped(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, newMockCarService(testCar()))
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// Another businessman sees someone else's booking as not found.
	_, err = svc.UpdateStatus(ctx, "bm-2", b.ID, StatusAccepted, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateStatus(ctx, "bm-1", "booking-unknown", StatusAccepted, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRejectStoresReasonVerbatim(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, newMockCarService(testCar()))
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	rejected, err := svc.UpdateStatus(ctx, "bm-1", b.ID, StatusRejected, "car is in the workshop")
	require.NoError(t, err)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "car is in the workshop", *rejected.RejectionReason)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, "car is in the workshop", *got.RejectionReason)
}

func TestRejectWithoutReason(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, newMockCarService(testCar()))
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	rejected, err := svc.UpdateStatus(ctx, "bm-1", b.ID, StatusRejected, "   ")
	require.NoError(t, err)
	assert.Nil(t, rejected.RejectionReason)
}

func TestListForPrincipal(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, newMockCarService(testCar()))
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.CustomerID = "cu-2"
	_, err = svc.Create(ctx, req)
	require.NoError(t, err)

	mine, err := svc.ListForPrincipal(ctx, auth.Principal{ID: "cu-1", Role: auth.RoleCustomer})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	owned, err := svc.ListForPrincipal(ctx, auth.Principal{ID: "bm-1", Role: auth.RoleBusinessman})
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	_, err = svc.ListForPrincipal(ctx, auth.Principal{ID: "x", Role: auth.Role("admin")})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestHistory(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, newMockCarService(testCar()))
	ctx := context.Background()

	b, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, "bm-1", b.ID, StatusAccepted, "")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, "bm-1", b.ID, StatusCompleted, "")
	require.NoError(t, err)

	b2, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, "bm-1", b2.ID, StatusRejected, "no driver")
	require.NoError(t, err)

	h, err := svc.History(ctx, auth.Principal{ID: "bm-1", Role: auth.RoleBusinessman})
	require.NoError(t, err)
	assert.Equal(t, 2, h.Stats.Total)
	assert.Equal(t, 1, h.Stats.Completed)
	assert.Equal(t, 1, h.Stats.Rejected)
	assert.Equal(t, 500.0, h.TotalRevenue)
	assert.NotNil(t, h.MonthlyBookings)

	// The customer variant carries no business analytics.
	ch, err := svc.History(ctx, auth.Principal{ID: "cu-1", Role: auth.RoleCustomer})
	require.NoError(t, err)
	assert.Equal(t, 2, ch.Stats.Total)
	assert.Zero(t, ch.TotalRevenue)
	assert.Nil(t, ch.CarStats)
	assert.Nil(t, ch.MonthlyBookings)
}
