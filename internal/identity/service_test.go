package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WahidMubarrat/CarBhara/internal/auth"
)

// mockRepository keeps both principal tables in memory. Email lookups
// span both maps, mirroring the cross-table uniqueness rule.
type mockRepository struct {
	mu          sync.Mutex
	customers   map[string]*Customer
	businessmen map[string]*Businessman
	nextID      int
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		customers:   make(map[string]*Customer),
		businessmen: make(map[string]*Businessman),
	}
}

func (m *mockRepository) CreateCustomer(_ context.Context, c *Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = fmt.Sprintf("cu-%d", m.nextID)
	stored := *c
	m.customers[c.ID] = &stored
	return nil
}

func (m *mockRepository) CreateBusinessman(_ context.Context, b *Businessman) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	b.ID = fmt.Sprintf("bm-%d", m.nextID)
	stored := *b
	m.businessmen[b.ID] = &stored
	return nil
}

func (m *mockRepository) GetCustomerByEmail(_ context.Context, email string) (*Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepository) GetBusinessmanByEmail(_ context.Context, email string) (*Businessman, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.businessmen {
		if b.Email == email {
			cp := *b
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepository) GetCustomerByID(_ context.Context, id string) (*Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockRepository) GetBusinessmanByID(_ context.Context, id string) (*Businessman, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.businessmen[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *mockRepository) UpdateCustomer(_ context.Context, c *Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[c.ID]; !ok {
		return ErrNotFound
	}
	stored := *c
	m.customers[c.ID] = &stored
	return nil
}

func (m *mockRepository) UpdateBusinessman(_ context.Context, b *Businessman) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.businessmen[b.ID]; !ok {
		return ErrNotFound
	}
	stored := *b
	m.businessmen[b.ID] = &stored
	return nil
}

func (m *mockRepository) EmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.customers {
		if c.Email == email {
			return true, nil
		}
	}
	for _, b := range m.businessmen {
		if b.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakeHasher makes password checks deterministic without bcrypt cost.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func customerSignUp() SignUpRequest {
	return SignUpRequest{
		Role:     auth.RoleCustomer,
		FullName: "Rahim Uddin",
		Email:    "rahim@example.com",
		Password: "sup3rsecret",
	}
}

func businessmanSignUp() SignUpRequest {
	company := "Dhaka Wheels"
	return SignUpRequest{
		Role:        auth.RoleBusinessman,
		FullName:    "Karim Ahmed",
		Email:       "karim@example.com",
		Password:    "sup3rsecret",
		CompanyName: &company,
	}
}

func TestSignUp(t *testing.T) {
	svc := NewService(newMockRepository(), fakeHasher{})
	ctx := context.Background()

	p, err := svc.SignUp(ctx, customerSignUp())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, auth.RoleCustomer, p.Role)
	assert.Equal(t, "rahim@example.com", p.Email)

	b, err := svc.SignUp(ctx, businessmanSignUp())
	require.NoError(t, err)
	assert.Equal(t, auth.RoleBusinessman, b.Role)
	require.NotNil(t, b.CompanyName)
	assert.Equal(t, "Dhaka Wheels", *b.CompanyName)
}

func TestSignUpValidation(t *testing.T) {
	svc := NewService(newMockRepository(), fakeHasher{})
	ctx := context.Background()

	req := customerSignUp()
	req.FullName = "  "
	_, err := svc.SignUp(ctx, req)
	assert.ErrorIs(t, err, ErrMissingFields)

	req = customerSignUp()
	req.Role = auth.Role("admin")
	_, err = svc.SignUp(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidRole)

	req = customerSignUp()
	req.Password = "short"
	_, err = svc.SignUp(ctx, req)
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestSignUpEmailUniqueAcrossRoles(t *testing.T) {
	svc := NewService(newMockRepository(), fakeHasher{})
	ctx := context.Background()

	_, err := svc.SignUp(ctx, customerSignUp())
	require.NoError(t, err)

	// Same email as a businessman is still taken.
	req := businessmanSignUp()
	req.Email = "Rahim@Example.com " // normalized before the check
	_, err = svc.SignUp(ctx, req)
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestSignIn(t *testing.T) {
	svc := NewService(newMockRepository(), fakeHasher{})
	ctx := context.Background()

	_, err := svc.SignUp(ctx, customerSignUp())
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, businessmanSignUp())
	require.NoError(t, err)

	p, err := svc.SignIn(ctx, "RAHIM@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleCustomer, p.Role)

	b, err := svc.SignIn(ctx, "karim@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleBusinessman, b.Role)

	_, err = svc.SignIn(ctx, "rahim@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, "nobody@example.com", "sup3rsecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	svc := NewService(newMockRepository(), fakeHasher{})
	ctx := context.Background()

	created, err := svc.SignUp(ctx, customerSignUp())
	require.NoError(t, err)

	p, err := svc.GetProfile(ctx, auth.Principal{ID: created.ID, Role: auth.RoleCustomer})
	require.NoError(t, err)
	assert.Equal(t, created.ID, p.ID)
	assert.Equal(t, "Rahim Uddin", p.FullName)

	_, err = svc.GetProfile(ctx, auth.Principal{ID: "missing", Role: auth.RoleCustomer})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc := NewService(newMockRepository(), fakeHasher{})
	ctx := context.Background()

	created, err := svc.SignUp(ctx, customerSignUp())
	require.NoError(t, err)
	principal := auth.Principal{ID: created.ID, Role: auth.RoleCustomer}

	age := 30
	p, err := svc.UpdateProfile(ctx, principal, UpdateProfileRequest{
		FullName: "Rahim U.",
		Phone:    "01711111111",
		Address:  "Mirpur, Dhaka",
		Age:      &age,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rahim U.", p.FullName)
	require.NotNil(t, p.Phone)
	assert.Equal(t, "01711111111", *p.Phone)
	require.NotNil(t, p.Age)
	assert.Equal(t, 30, *p.Age)

	_, err = svc.UpdateProfile(ctx, principal, UpdateProfileRequest{
		FullName: "Rahim U.",
		Phone:    "",
		Address:  "Mirpur, Dhaka",
	})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestUpdateProfileBusinessman(t *testing.T) {
	svc := NewService(newMockRepository(), fakeHasher{})
	ctx := context.Background()

	created, err := svc.SignUp(ctx, businessmanSignUp())
	require.NoError(t, err)

	company := "Dhaka Wheels Ltd"
	p, err := svc.UpdateProfile(ctx, auth.Principal{ID: created.ID, Role: auth.RoleBusinessman}, UpdateProfileRequest{
		FullName:    "Karim Ahmed",
		Phone:       "01822222222",
		Address:     "Banani, Dhaka",
		CompanyName: &company,
	})
	require.NoError(t, err)
	require.NotNil(t, p.CompanyName)
	assert.Equal(t, "Dhaka Wheels Ltd", *p.CompanyName)
}
