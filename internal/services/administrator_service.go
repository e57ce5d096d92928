package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/store"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the services logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// AdministratorService provides the administrator use cases
type AdministratorService interface {
	// Login returns the administrator matching the credentials or ErrInvalidCredentials
	Login(ctx context.Context, credentials models.LoginDTO) (*models.Administrator, error)
	// Create validates and registers a new administrator
	Create(ctx context.Context, dto models.AdministratorDTO) (*models.Administrator, error)
	// ListPage returns one page of administrators
	ListPage(ctx context.Context, page int) ([]models.Administrator, error)
	// GetByID returns store.ErrNotFound when the id is unknown
	GetByID(ctx context.Context, id uint) (*models.Administrator, error)
	// EnsureSeed registers a default Admin when no administrator exists
	EnsureSeed(ctx context.Context, email, password string) error
}

type administratorService struct {
	store    store.Store[models.Administrator]
	pageSize int
	hashCost int
}

// AdministratorOption customizes an AdministratorService
type AdministratorOption func(*administratorService)

// WithHashCost sets the bcrypt cost used for new passwords
func WithHashCost(cost int) AdministratorOption {
	return func(s *administratorService) {
		s.hashCost = cost
	}
}

// NewAdministratorService creates a new instance of AdministratorService
func NewAdministratorService(s store.Store[models.Administrator], pageSize int, opts ...AdministratorOption) AdministratorService {
	svc := &administratorService{
		store:    s,
		pageSize: pageSize,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *administratorService) Login(ctx context.Context, credentials models.LoginDTO) (*models.Administrator, error) {
	candidates, err := s.store.List(ctx, store.All, store.AdministratorEmail(credentials.Email))
	if err != nil {
		return nil, fmt.Errorf("login lookup: %w", err)
	}

	// email is not unique, so every record with it is a candidate
	for i := range candidates {
		if bcrypt.CompareHashAndPassword([]byte(candidates[i].PasswordHash), []byte(credentials.Password)) == nil {
			return &candidates[i], nil
		}
	}

	log.WithField("candidates", len(candidates)).Debug("Login rejected")
	return nil, ErrInvalidCredentials
}

func (s *administratorService) Create(ctx context.Context, dto models.AdministratorDTO) (*models.Administrator, error) {
	if errs := dto.Validate(); !errs.Empty() {
		return nil, errs
	}
	role, err := models.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &models.Administrator{
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.store.Create(ctx, admin); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"administrator_id": admin.ID,
		"role":             admin.Role,
	}).Info("Administrator created")
	return admin, nil
}

func (s *administratorService) ListPage(ctx context.Context, page int) ([]models.Administrator, error) {
	return s.store.List(ctx, store.NewPage(page, s.pageSize))
}

func (s *administratorService) GetByID(ctx context.Context, id uint) (*models.Administrator, error) {
	return s.store.FindByID(ctx, id)
}

func (s *administratorService) EnsureSeed(ctx context.Context, email, password string) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("Administrators already seeded")
		return nil
	}

	log.WithField("email", email).Info("No administrators found, seeding default Admin")
	_, err = s.Create(ctx, models.AdministratorDTO{
		Email:    email,
		Password: password,
		Role:     models.RoleAdmin.String(),
	})
	return err
}
