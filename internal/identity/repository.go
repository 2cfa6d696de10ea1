package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines storage access for both principal tables.
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	CreateBusinessman(ctx context.Context, b *Businessman) error
	GetCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	GetBusinessmanByEmail(ctx context.Context, email string) (*Businessman, error)
	GetCustomerByID(ctx context.Context, id string) (*Customer, error)
	GetBusinessmanByID(ctx context.Context, id string) (*Businessman, error)
	UpdateCustomer(ctx context.Context, c *Customer) error
	UpdateBusinessman(ctx context.Context, b *Businessman) error

	// EmailExists reports whether the email is used in either table.
	EmailExists(ctx context.Context, email string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateCustomer(ctx context.Context, c *Customer) error {
	const query = `
		INSERT INTO public.customers (fullname, email, password_hash, age, address, phone, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	if err := r.pool.QueryRow(
		ctx,
		query,
		c.FullName,
		c.Email,
		c.PasswordHash,
		c.Age,
		c.Address,
		c.Phone,
		c.ProfilePicture,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		return fmt.Errorf("create customer failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) CreateBusinessman(ctx context.Context, b *Businessman) error {
	const query = `
		INSERT INTO public.businessmen (fullname, email, password_hash, company_name, address, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	if err := r.pool.QueryRow(
		ctx,
		query,
		b.FullName,
		b.Email,
		b.PasswordHash,
		b.CompanyName,
		b.Address,
		b.Phone,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		return fmt.Errorf("create businessman failed: %w", err)
	}

	return nil
}

const customerColumns = `
	id, fullname, email, password_hash, age, address, phone, profile_picture, created_at, updated_at
`

func (r *pgxRepository) scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	if err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.Email,
		&c.PasswordHash,
		&c.Age,
		&c.Address,
		&c.Phone,
		&c.ProfilePicture,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan customer failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) GetCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	query := "SELECT" + customerColumns + "FROM public.customers WHERE email = $1"
	return r.scanCustomer(r.pool.QueryRow(ctx, query, email))
}

func (r *pgxRepository) GetCustomerByID(ctx context.Context, id string) (*Customer, error) {
	query := "SELECT" + customerColumns + "FROM public.customers WHERE id = $1"
	return r.scanCustomer(r.pool.QueryRow(ctx, query, id))
}

const businessmanColumns = `
	id, fullname, email, password_hash, company_name, address, phone, created_at, updated_at
`

func (r *pgxRepository) scanBusinessman(row pgx.Row) (*Businessman, error) {
	var b Businessman
	if err := row.Scan(
		&b.ID,
		&b.FullName,
		&b.Email,
		&b.PasswordHash,
		&b.CompanyName,
		&b.Address,
		&b.Phone,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan businessman failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) GetBusinessmanByEmail(ctx context.Context, email string) (*Businessman, error) {
	query := "SELECT" + businessmanColumns + "FROM public.businessmen WHERE email = $1"
	return r.scanBusinessman(r.pool.QueryRow(ctx, query, email))
}

func (r *pgxRepository) GetBusinessmanByID(ctx context.Context, id string) (*Businessman, error) {
	query := "SELECT" + businessmanColumns + "FROM public.businessmen WHERE id = $1"
	return r.scanBusinessman(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) UpdateCustomer(ctx context.Context, c *Customer) error {
	const query = `
		UPDATE public.customers
		SET fullname = $1, age = $2, address = $3, phone = $4, profile_picture = $5, updated_at = now()
		WHERE id = $6
	`

	ct, err := r.pool.Exec(ctx, query, c.FullName, c.Age, c.Address, c.Phone, c.ProfilePicture, c.ID)
	if err != nil {
		return fmt.Errorf("update customer failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateBusinessman(ctx context.Context, b *Businessman) error {
	const query = `
		UPDATE public.businessmen
		SET fullname = $1, company_name = $2, address = $3, phone = $4, updated_at = now()
		WHERE id = $5
	`

	ct, err := r.pool.Exec(ctx, query, b.FullName, b.CompanyName, b.Address, b.Phone, b.ID)
	if err != nil {
		return fmt.Errorf("update businessman failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	// Signup must refuse an email already used by either principal kind.
	const query = `
		SELECT EXISTS (SELECT 1 FROM public.customers WHERE email = $1)
		    OR EXISTS (SELECT 1 FROM public.businessmen WHERE email = $1)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email failed: %w", err)
	}
	return exists, nil
}
