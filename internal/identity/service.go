package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/WahidMubarrat/CarBhara/internal/auth"
)

// SignUpRequest carries registration input for either principal kind.
type SignUpRequest struct {
	Role     auth.Role
	FullName string
	Email    string
	Password string

	// Customer-only
	Age            *int
	ProfilePicture *string

	// Businessman-only
	CompanyName *string

	Address *string
	Phone   *string
}

// UpdateProfileRequest carries profile edits. FullName, Phone and Address
// are required; the rest apply per role.
type UpdateProfileRequest struct {
	FullName    string
	Phone       string
	Address     string
	Age         *int
	CompanyName *string
}

// Profile is the role-neutral view of a principal returned to the API.
type Profile struct {
	ID             string
	Role           auth.Role
	FullName       string
	Email          string
	Age            *int
	Address        *string
	Phone          *string
	CompanyName    *string
	ProfilePicture *string
}

// Service defines business logic for accounts and profiles.
type Service interface {
	SignUp(ctx context.Context, req SignUpRequest) (*Profile, error)
	SignIn(ctx context.Context, email, password string) (*Profile, error)
	GetProfile(ctx context.Context, p auth.Principal) (*Profile, error)
	UpdateProfile(ctx context.Context, p auth.Principal, req UpdateProfileRequest) (*Profile, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new identity Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) SignUp(ctx context.Context, req SignUpRequest) (*Profile, error) {
	cleanEmail := normalizeEmail(req.Email)
	fullName := strings.TrimSpace(req.FullName)

	if fullName == "" || cleanEmail == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if !req.Role.IsValid() {
		return nil, ErrInvalidRole
	}
	if len(req.Password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// The email must be free across both principal tables.
	exists, err := s.repo.EmailExists(ctx, cleanEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyUsed
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	switch req.Role {
	case auth.RoleCustomer:
		c := &Customer{
			FullName:       fullName,
			Email:          cleanEmail,
			PasswordHash:   hash,
			Age:            req.Age,
			Address:        req.Address,
			Phone:          req.Phone,
			ProfilePicture: req.ProfilePicture,
		}
		if err := s.repo.CreateCustomer(ctx, c); err != nil {
			return nil, err
		}
		return customerProfile(c), nil

	case auth.RoleBusinessman:
		b := &Businessman{
			FullName:     fullName,
			Email:        cleanEmail,
			PasswordHash: hash,
			CompanyName:  req.CompanyName,
			Address:      req.Address,
			Phone:        req.Phone,
		}
		if err := s.repo.CreateBusinessman(ctx, b); err != nil {
			return nil, err
		}
		return businessmanProfile(b), nil

	default:
		return nil, ErrInvalidRole
	}
}

func (s *service) SignIn(ctx context.Context, email, password string) (*Profile, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	// Customers are checked first, then businessmen.
	if c, err := s.repo.GetCustomerByEmail(ctx, cleanEmail); err == nil {
		if err := s.hasher.Compare(c.PasswordHash, password); err != nil {
			return nil, ErrInvalidCredentials
		}
		return customerProfile(c), nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to fetch customer by email: %w", err)
	}

	b, err := s.repo.GetBusinessmanByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch businessman by email: %w", err)
	}

	if err := s.hasher.Compare(b.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return businessmanProfile(b), nil
}

func (s *service) GetProfile(ctx context.Context, p auth.Principal) (*Profile, error) {
	switch p.Role {
	case auth.RoleCustomer:
		c, err := s.repo.GetCustomerByID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		return customerProfile(c), nil
	case auth.RoleBusinessman:
		b, err := s.repo.GetBusinessmanByID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		return businessmanProfile(b), nil
	default:
		return nil, ErrInvalidRole
	}
}

func (s *service) UpdateProfile(ctx context.Context, p auth.Principal, req UpdateProfileRequest) (*Profile, error) {
	fullName := strings.TrimSpace(req.FullName)
	phone := strings.TrimSpace(req.Phone)
	address := strings.TrimSpace(req.Address)

	if fullName == "" || phone == "" || address == "" {
		return nil, ErrMissingFields
	}

	switch p.Role {
	case auth.RoleCustomer:
		c, err := s.repo.GetCustomerByID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		c.FullName = fullName
		c.Phone = &phone
		c.Address = &address
		if req.Age != nil {
			c.Age = req.Age
		}
		if err := s.repo.UpdateCustomer(ctx, c); err != nil {
			return nil, err
		}
		return customerProfile(c), nil

	case auth.RoleBusinessman:
		b, err := s.repo.GetBusinessmanByID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		b.FullName = fullName
		b.Phone = &phone
		b.Address = &address
		if req.CompanyName != nil {
			b.CompanyName = req.CompanyName
		}
		if err := s.repo.UpdateBusinessman(ctx, b); err != nil {
			return nil, err
		}
		return businessmanProfile(b), nil

	default:
		return nil, ErrInvalidRole
	}
}

func customerProfile(c *Customer) *Profile {
	return &Profile{
		ID:             c.ID,
		Role:           auth.RoleCustomer,
		FullName:       c.FullName,
		Email:          c.Email,
		Age:            c.Age,
		Address:        c.Address,
		Phone:          c.Phone,
		ProfilePicture: c.ProfilePicture,
	}
}

func businessmanProfile(b *Businessman) *Profile {
	return &Profile{
		ID:          b.ID,
		Role:        auth.RoleBusinessman,
		FullName:    b.FullName,
		Email:       b.Email,
		Address:     b.Address,
		Phone:       b.Phone,
		CompanyName: b.CompanyName,
	}
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
