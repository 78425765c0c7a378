package dto

import "fleetops_driver_service/internal/models"

// Driver is the wire representation of a driver. createdAt is never exposed
// for writing, and driverId is ignored on create and overridden by the path on
// update.
type Driver struct {
	DriverID      uint        `json:"driverId"`
	FullName      string      `json:"fullName" binding:"required"`
	Email         string      `json:"email" binding:"required"`
	Phone         string      `json:"phone" binding:"required"`
	LicenseNumber string      `json:"licenseNumber" binding:"required"`
	ExpiryDate    models.Date `json:"expiryDate" binding:"required"`
	StarRating    *float64    `json:"starRating"`
	TripCount     *int        `json:"tripCount"`
	HoursThisWeek *float64    `json:"hoursThisWeek"`
}

// FromModel copies a persisted driver into its wire form.
func FromModel(m models.Driver) Driver {
	return Driver{
		DriverID:      m.DriverID,
		FullName:      m.FullName,
		Email:         m.Email,
		Phone:         m.Phone,
		LicenseNumber: m.LicenseNumber,
		ExpiryDate:    m.ExpiryDate,
		StarRating:    m.StarRating,
		TripCount:     m.TripCount,
		HoursThisWeek: m.HoursThisWeek,
	}
}

// FromModels converts a slice, always returning a non-nil result so an empty
// list encodes as [].
func FromModels(ms []models.Driver) []Driver {
	out := make([]Driver, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

// ToModel builds an entity carrying the caller-settable fields.
func (d Driver) ToModel() models.Driver {
	return models.Driver{
		DriverID:      d.DriverID,
		FullName:      d.FullName,
		Email:         d.Email,
		Phone:         d.Phone,
		LicenseNumber: d.LicenseNumber,
		ExpiryDate:    d.ExpiryDate,
		StarRating:    d.StarRating,
		TripCount:     d.TripCount,
		HoursThisWeek: d.HoursThisWeek,
	}
}
