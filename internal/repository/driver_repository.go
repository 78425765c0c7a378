package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetops_driver_service/internal/apperrors"
	"fleetops_driver_service/internal/models"
)

// DriverRepository persists drivers through GORM.
type DriverRepository struct {
	*Table[models.Driver]
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{Table: NewTable[models.Driver](db), db: db}
}

// Create inserts d and fills in DriverID and CreatedAt.
func (r *DriverRepository) Create(ctx context.Context, d *models.Driver) error {
	d.DriverID = 0
	return translate(r.db.WithContext(ctx).Create(d).Error)
}

func (r *DriverRepository) FindByID(ctx context.Context, id uint) (*models.Driver, error) {
	var d models.Driver
	if err := r.db.WithContext(ctx).First(&d, "driver_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *DriverRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Driver, error) {
	var d models.Driver
	if err := r.db.WithContext(ctx).First(&d, "license_number = ?", licenseNumber).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

// List returns every driver ordered by driver_id.
func (r *DriverRepository) List(ctx context.Context) ([]models.Driver, error) {
	drivers := []models.Driver{}
	if err := r.db.WithContext(ctx).Order("driver_id ASC").Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

// Update overwrites every mutable column of the row identified by d.DriverID.
// Nil optional fields are written as NULL; created_at is never touched.
func (r *DriverRepository) Update(ctx context.Context, d *models.Driver) error {
	res := r.db.WithContext(ctx).
		Model(&models.Driver{}).
		Where("driver_id = ?", d.DriverID).
		Select("full_name", "email", "phone", "license_number", "expiry_date",
			"star_rating", "trip_count", "hours_this_week").
		Updates(d)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DriverRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Driver{}, "driver_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Ping checks the underlying connection.
func (r *DriverRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
