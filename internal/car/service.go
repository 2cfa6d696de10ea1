package car

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/WahidMubarrat/CarBhara/internal/file"
)

// AddRequest carries a new listing: required text fields plus the
// required picture and paperwork uploads.
type AddRequest struct {
	CarName     string
	Model       string
	DriverName  string
	DriverPhone string
	HourlyFare  float64

	CarPicture        *multipart.FileHeader
	RegistrationPaper *multipart.FileHeader
	DrivingLicense    *multipart.FileHeader
	OtherDocuments    []*multipart.FileHeader
}

// UpdateRequest carries a partial edit; nil fields are left untouched.
// Uploaded files replace the stored document, except OtherDocuments
// which are appended.
type UpdateRequest struct {
	CarName     *string
	Model       *string
	DriverName  *string
	DriverPhone *string
	HourlyFare  *float64
	IsAvailable *bool

	CarPicture        *multipart.FileHeader
	RegistrationPaper *multipart.FileHeader
	DrivingLicense    *multipart.FileHeader
	OtherDocuments    []*multipart.FileHeader
}

type Service interface {
	Add(ctx context.Context, businessmanID string, req AddRequest) (*Car, error)
	GetByID(ctx context.Context, id string) (*Car, error)
	ListByOwner(ctx context.Context, businessmanID string) ([]*Car, error)
	ListAvailable(ctx context.Context) ([]*Car, error)
	Update(ctx context.Context, businessmanID, carID string, req UpdateRequest) (*Car, error)
	Delete(ctx context.Context, businessmanID, carID string) error
	RemoveDocument(ctx context.Context, businessmanID, carID, documentURL string) (*Car, error)
}

type service struct {
	repo        Repository
	fileService file.Service
}

func NewService(repo Repository, fileService file.Service) Service {
	return &service{
		repo:        repo,
		fileService: fileService,
	}
}

// upload stores one multipart file and returns its public URL.
func (s *service) upload(ctx context.Context, header *multipart.FileHeader, ownerID string) (string, error) {
	f, err := s.fileService.Upload(ctx, header, ownerID)
	if err != nil {
		return "", err
	}
	return file.FileURL(f.ID), nil
}

func (s *service) Add(ctx context.Context, businessmanID string, req AddRequest) (*Car, error) {
	carName := strings.TrimSpace(req.CarName)
	model := strings.TrimSpace(req.Model)
	driverName := strings.TrimSpace(req.DriverName)
	driverPhone := strings.TrimSpace(req.DriverPhone)

	if carName == "" || model == "" || driverName == "" || driverPhone == "" {
		return nil, ErrMissingFields
	}
	if req.HourlyFare <= 0 {
		return nil, ErrInvalidFare
	}
	if req.CarPicture == nil || req.RegistrationPaper == nil || req.DrivingLicense == nil {
		return nil, ErrMissingDocuments
	}
	if len(req.OtherDocuments) > MaxOtherDocuments {
		return nil, ErrTooManyDocuments
	}

	carPicture, err := s.upload(ctx, req.CarPicture, businessmanID)
	if err != nil {
		return nil, err
	}
	registrationPaper, err := s.upload(ctx, req.RegistrationPaper, businessmanID)
	if err != nil {
		return nil, err
	}
	drivingLicense, err := s.upload(ctx, req.DrivingLicense, businessmanID)
	if err != nil {
		return nil, err
	}

	otherDocuments := make([]string, 0, len(req.OtherDocuments))
	for _, header := range req.OtherDocuments {
		url, err := s.upload(ctx, header, businessmanID)
		if err != nil {
			return nil, err
		}
		otherDocuments = append(otherDocuments, url)
	}

	c := &Car{
		BusinessmanID:     businessmanID,
		CarName:           carName,
		Model:             model,
		CarPicture:        carPicture,
		RegistrationPaper: registrationPaper,
		DriverName:        driverName,
		DriverPhone:       driverPhone,
		DrivingLicense:    drivingLicense,
		OtherDocuments:    otherDocuments,
		HourlyFare:        req.HourlyFare,
		IsAvailable:       true,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Car, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByOwner(ctx context.Context, businessmanID string) ([]*Car, error) {
	return s.repo.ListByOwner(ctx, businessmanID)
}

func (s *service) ListAvailable(ctx context.Context) ([]*Car, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *service) Update(ctx context.Context, businessmanID, carID string, req UpdateRequest) (*Car, error) {
	c, err := s.repo.GetByIDForOwner(ctx, carID, businessmanID)
	if err != nil {
		return nil, err
	}

	if req.CarName != nil && strings.TrimSpace(*req.CarName) != "" {
		c.CarName = strings.TrimSpace(*req.CarName)
	}
	if req.Model != nil && strings.TrimSpace(*req.Model) != "" {
		c.Model = strings.TrimSpace(*req.Model)
	}
	if req.DriverName != nil && strings.TrimSpace(*req.DriverName) != "" {
		c.DriverName = strings.TrimSpace(*req.DriverName)
	}
	if req.DriverPhone != nil && strings.TrimSpace(*req.DriverPhone) != "" {
		c.DriverPhone = strings.TrimSpace(*req.DriverPhone)
	}
	if req.HourlyFare != nil {
		if *req.HourlyFare <= 0 {
			return nil, ErrInvalidFare
		}
		c.HourlyFare = *req.HourlyFare
	}
	if req.IsAvailable != nil {
		c.IsAvailable = *req.IsAvailable
	}

	if req.CarPicture != nil {
		url, err := s.upload(ctx, req.CarPicture, businessmanID)
		if err != nil {
			return nil, err
		}
		c.CarPicture = url
	}
	if req.RegistrationPaper != nil {
		url, err := s.upload(ctx, req.RegistrationPaper, businessmanID)
		if err != nil {
			return nil, err
		}
		c.RegistrationPaper = url
	}
	if req.DrivingLicense != nil {
		url, err := s.upload(ctx, req.DrivingLicense, businessmanID)
		if err != nil {
			return nil, err
		}
		c.DrivingLicense = url
	}

	if len(req.OtherDocuments) > 0 {
		if len(c.OtherDocuments)+len(req.OtherDocuments) > MaxOtherDocuments {
			return nil, ErrTooManyDocuments
		}
		for _, header := range req.OtherDocuments {
			url, err := s.upload(ctx, header, businessmanID)
			if err != nil {
				return nil, err
			}
			c.OtherDocuments = append(c.OtherDocuments, url)
		}
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *service) Delete(ctx context.Context, businessmanID, carID string) error {
	return s.repo.Delete(ctx, carID, businessmanID)
}

func (s *service) RemoveDocument(ctx context.Context, businessmanID, carID, documentURL string) (*Car, error) {
	c, err := s.repo.GetByIDForOwner(ctx, carID, businessmanID)
	if err != nil {
		return nil, err
	}

	found := false
	kept := make([]string, 0, len(c.OtherDocuments))
	for _, url := range c.OtherDocuments {
		if url == documentURL && !found {
			found = true
			continue
		}
		kept = append(kept, url)
	}
	if !found {
		return nil, ErrDocumentNotFound
	}
	c.OtherDocuments = kept

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
