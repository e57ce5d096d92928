package services

import (
	"context"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/store"
	"github.com/sirupsen/logrus"
)

// VehicleQuery holds the optional listing filters
type VehicleQuery struct {
	Name  string
	Brand string
}

// VehicleService provides methods to manage vehicles
type VehicleService interface {
	// Create validates and registers a new vehicle
	Create(ctx context.Context, dto models.VehicleDTO) (*models.Vehicle, error)
	// ListPage returns one page of vehicles matching query
	ListPage(ctx context.Context, page int, query VehicleQuery) ([]models.Vehicle, error)
	// GetByID returns store.ErrNotFound when the id is unknown
	GetByID(ctx context.Context, id uint) (*models.Vehicle, error)
	// Update replaces name, brand and year of an existing vehicle
	Update(ctx context.Context, id uint, dto models.VehicleDTO) (*models.Vehicle, error)
	// Delete removes an existing vehicle
	Delete(ctx context.Context, id uint) error
}

// vehicleService is the implementation of the VehicleService interface
type vehicleService struct {
	store    store.Store[models.Vehicle]
	pageSize int
}

// NewVehicleService creates a new instance of VehicleService
func NewVehicleService(s store.Store[models.Vehicle], pageSize int) VehicleService {
	return &vehicleService{store: s, pageSize: pageSize}
}

func (s *vehicleService) Create(ctx context.Context, dto models.VehicleDTO) (*models.Vehicle, error) {
	if errs := dto.Validate(); !errs.Empty() {
		return nil, errs
	}

	vehicle := &models.Vehicle{}
	dto.Apply(vehicle)
	if err := s.store.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	log.WithField("vehicle_id", vehicle.ID).Info("Vehicle created")
	return vehicle, nil
}

func (s *vehicleService) ListPage(ctx context.Context, page int, query VehicleQuery) ([]models.Vehicle, error) {
	var filters []store.Filter[models.Vehicle]
	if query.Name != "" {
		filters = append(filters, store.VehicleName(query.Name))
	}
	if query.Brand != "" {
		filters = append(filters, store.VehicleBrand(query.Brand))
	}
	return s.store.List(ctx, store.NewPage(page, s.pageSize), filters...)
}

func (s *vehicleService) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	return s.store.FindByID(ctx, id)
}

// Update validates before looking the vehicle up, so an invalid payload is
// reported even for unknown ids.
func (s *vehicleService) Update(ctx context.Context, id uint, dto models.VehicleDTO) (*models.Vehicle, error) {
	if errs := dto.Validate(); !errs.Empty() {
		return nil, errs
	}

	vehicle, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto.Apply(vehicle)
	if err := s.store.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"vehicle_id": vehicle.ID,
		"year":       vehicle.Year,
	}).Info("Vehicle updated")
	return vehicle, nil
}

func (s *vehicleService) Delete(ctx context.Context, id uint) error {
	if _, err := s.store.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	log.WithField("vehicle_id", id).Info("Vehicle deleted")
	return nil
}
