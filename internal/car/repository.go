package car

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, car *Car) error
	GetByID(ctx context.Context, id string) (*Car, error)

	// GetByIDForOwner fetches a car only if it belongs to the given
	// businessman; a car owned by someone else reads as not found.
	GetByIDForOwner(ctx context.Context, id, businessmanID string) (*Car, error)

	ListByOwner(ctx context.Context, businessmanID string) ([]*Car, error)
	ListAvailable(ctx context.Context) ([]*Car, error)
	Update(ctx context.Context, car *Car) error
	Delete(ctx context.Context, id, businessmanID string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var carColumns = []string{
	"id", "businessman_id", "car_name", "model", "car_picture", "registration_paper",
	"driver_name", "driver_phone", "driving_license", "other_documents",
	"hourly_fare", "is_available", "created_at", "updated_at",
}

func scanCar(row pgx.Row) (*Car, error) {
	var c Car
	if err := row.Scan(
		&c.ID, &c.BusinessmanID, &c.CarName, &c.Model, &c.CarPicture, &c.RegistrationPaper,
		&c.DriverName, &c.DriverPhone, &c.DrivingLicense, &c.OtherDocuments,
		&c.HourlyFare, &c.IsAvailable, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan car failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) Create(ctx context.Context, c *Car) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.cars").
		Columns(
			"businessman_id", "car_name", "model", "car_picture", "registration_paper",
			"driver_name", "driver_phone", "driving_license", "other_documents",
			"hourly_fare", "is_available",
		).
		Values(
			c.BusinessmanID, c.CarName, c.Model, c.CarPicture, c.RegistrationPaper,
			c.DriverName, c.DriverPhone, c.DrivingLicense, c.OtherDocuments,
			c.HourlyFare, c.IsAvailable,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create car query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *pgxRepository) get(ctx context.Context, where squirrel.Eq) (*Car, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(carColumns...).
		From("public.cars").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get car query failed: %w", err)
	}

	return scanCar(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Car, error) {
	return r.get(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetByIDForOwner(ctx context.Context, id, businessmanID string) (*Car, error) {
	return r.get(ctx, squirrel.Eq{"id": id, "businessman_id": businessmanID})
}

func (r *pgxRepository) list(ctx context.Context, where any) ([]*Car, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := psql.Select(carColumns...).
		From("public.cars").
		OrderBy("created_at DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cars query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cars failed: %w", err)
	}
	defer rows.Close()

	var cars []*Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}

	return cars, rows.Err()
}

func (r *pgxRepository) ListByOwner(ctx context.Context, businessmanID string) ([]*Car, error) {
	return r.list(ctx, squirrel.Eq{"businessman_id": businessmanID})
}

func (r *pgxRepository) ListAvailable(ctx context.Context) ([]*Car, error) {
	return r.list(ctx, squirrel.Eq{"is_available": true})
}

func (r *pgxRepository) Update(ctx context.Context, c *Car) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.cars").
		Set("car_name", c.CarName).
		Set("model", c.Model).
		Set("car_picture", c.CarPicture).
		Set("registration_paper", c.RegistrationPaper).
		Set("driver_name", c.DriverName).
		Set("driver_phone", c.DriverPhone).
		Set("driving_license", c.DrivingLicense).
		Set("other_documents", c.OtherDocuments).
		Set("hourly_fare", c.HourlyFare).
		Set("is_available", c.IsAvailable).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID, "businessman_id": c.BusinessmanID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update car query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update car failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id, businessmanID string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.cars").
		Where(squirrel.Eq{"id": id, "businessman_id": businessmanID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete car query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete car failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
