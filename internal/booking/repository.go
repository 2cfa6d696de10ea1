package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error

	// GetByID fetches a single booking with its cross-references resolved.
	GetByID(ctx context.Context, id string) (*Booking, error)

	// GetByIDForOwner fetches a booking only if it belongs to the given
	// businessman; someone else's booking reads as not found.
	GetByIDForOwner(ctx context.Context, id, businessmanID string) (*Booking, error)

	ListByCustomer(ctx context.Context, customerID string) ([]*Booking, error)
	ListByBusinessman(ctx context.Context, businessmanID string) ([]*Booking, error)

	// UpdateStatus persists the status and rejection reason.
	UpdateStatus(ctx context.Context, booking *Booking) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"customer_id", "businessman_id", "car_id",
			"start_location", "end_location", "start_date_time",
			"status", "hourly_fare",
		).
		Values(
			b.CustomerID, b.BusinessmanID, b.CarID,
			b.StartLocation, b.EndLocation, b.StartDateTime,
			b.Status, b.HourlyFare,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// resolvedSelect builds the base query joining cars and both principal
// tables so every read returns a display-ready booking. The car join is
// LEFT: bookings outlive their car (append-only audit trail).
func resolvedSelect() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.customer_id", "b.businessman_id", "b.car_id",
		"b.start_location", "b.end_location", "b.start_date_time",
		"b.status", "b.rejection_reason", "b.hourly_fare", "b.created_at", "b.updated_at",
		"c.car_name", "c.model", "c.car_picture", "c.driver_name", "c.driver_phone",
		"cu.fullname", "cu.phone", "cu.email",
		"bm.fullname", "bm.phone", "bm.email", "bm.address",
	).
		From("public.bookings b").
		LeftJoin("public.cars c ON b.car_id = c.id").
		Join("public.customers cu ON b.customer_id = cu.id").
		Join("public.businessmen bm ON b.businessman_id = bm.id")
}

func scanResolved(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.CustomerID, &b.BusinessmanID, &b.CarID,
		&b.StartLocation, &b.EndLocation, &b.StartDateTime,
		&b.Status, &b.RejectionReason, &b.HourlyFare, &b.CreatedAt, &b.UpdatedAt,
		&b.CarName, &b.CarModel, &b.CarPicture, &b.DriverName, &b.DriverPhone,
		&b.CustomerName, &b.CustomerPhone, &b.CustomerEmail,
		&b.BusinessmanName, &b.BusinessmanPhone, &b.BusinessmanEmail, &b.BusinessmanAddress,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) get(ctx context.Context, where squirrel.Eq) (*Booking, error) {
	query, args, err := resolvedSelect().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}
	return scanResolved(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	return r.get(ctx, squirrel.Eq{"b.id": id})
}

func (r *pgxRepository) GetByIDForOwner(ctx context.Context, id, businessmanID string) (*Booking, error) {
	return r.get(ctx, squirrel.Eq{"b.id": id, "b.businessman_id": businessmanID})
}

func (r *pgxRepository) list(ctx context.Context, where squirrel.Eq) ([]*Booking, error) {
	query, args, err := resolvedSelect().
		Where(where).
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanResolved(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *pgxRepository) ListByCustomer(ctx context.Context, customerID string) ([]*Booking, error) {
	return r.list(ctx, squirrel.Eq{"b.customer_id": customerID})
}

func (r *pgxRepository) ListByBusinessman(ctx context.Context, businessmanID string) ([]*Booking, error) {
	return r.list(ctx, squirrel.Eq{"b.businessman_id": businessmanID})
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", b.Status).
		Set("rejection_reason", b.RejectionReason).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID, "businessman_id": b.BusinessmanID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
