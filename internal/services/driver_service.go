package services

import (
	"context"
	"errors"
	"fmt"

	logrus "github.com/sirupsen/logrus"

	"fleetops_driver_service/internal/apperrors"
	"fleetops_driver_service/internal/dto"
	"fleetops_driver_service/internal/models"
)

// DriverStore is the persistence the driver service needs.
type DriverStore interface {
	Create(ctx context.Context, d *models.Driver) error
	FindByID(ctx context.Context, id uint) (*models.Driver, error)
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Driver, error)
	List(ctx context.Context) ([]models.Driver, error)
	Update(ctx context.Context, d *models.Driver) error
	Delete(ctx context.Context, id uint) error
}

// DriverService maps driver operations onto the store and enforces license
// number uniqueness before writing. The unique index on license_number
// settles concurrent writers.
type DriverService struct {
	store DriverStore
	log   logrus.FieldLogger
}

func NewDriverService(store DriverStore, log logrus.FieldLogger) *DriverService {
	return &DriverService{store: store, log: log}
}

// Create inserts a new driver and returns it with its assigned id.
func (s *DriverService) Create(ctx context.Context, in dto.Driver) (dto.Driver, error) {
	if err := s.ensureLicenseAvailable(ctx, in.LicenseNumber, 0); err != nil {
		return dto.Driver{}, err
	}

	m := in.ToModel()
	if err := s.store.Create(ctx, &m); err != nil {
		return dto.Driver{}, fmt.Errorf("create driver: %w", err)
	}
	s.log.WithFields(logrus.Fields{"driver_id": m.DriverID, "license_number": m.LicenseNumber}).Info("driver created")
	return dto.FromModel(m), nil
}

func (s *DriverService) Get(ctx context.Context, id uint) (dto.Driver, error) {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.Driver{}, err
	}
	return dto.FromModel(*m), nil
}

func (s *DriverService) List(ctx context.Context) ([]dto.Driver, error) {
	ms, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return dto.FromModels(ms), nil
}

// Update replaces every mutable field of driver id with the values in in.
// Any id carried by in is ignored.
func (s *DriverService) Update(ctx context.Context, id uint, in dto.Driver) (dto.Driver, error) {
	if _, err := s.store.FindByID(ctx, id); err != nil {
		return dto.Driver{}, err
	}
	if err := s.ensureLicenseAvailable(ctx, in.LicenseNumber, id); err != nil {
		return dto.Driver{}, err
	}

	m := in.ToModel()
	m.DriverID = id
	if err := s.store.Update(ctx, &m); err != nil {
		return dto.Driver{}, fmt.Errorf("update driver %d: %w", id, err)
	}

	updated, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.Driver{}, err
	}
	s.log.WithField("driver_id", id).Info("driver updated")
	return dto.FromModel(*updated), nil
}

func (s *DriverService) Delete(ctx context.Context, id uint) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.WithField("driver_id", id).Info("driver deleted")
	return nil
}

// ensureLicenseAvailable fails when licenseNumber belongs to a driver other
// than owner. owner 0 means no driver may hold it.
func (s *DriverService) ensureLicenseAvailable(ctx context.Context, licenseNumber string, owner uint) error {
	holder, err := s.store.FindByLicenseNumber(ctx, licenseNumber)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check license number: %w", err)
	case holder.DriverID == owner:
		return nil
	default:
		return fmt.Errorf("%w: license number %q belongs to driver %d",
			apperrors.ErrConstraintViolation, licenseNumber, holder.DriverID)
	}
}
