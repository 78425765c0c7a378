// internal/models/Driver.go
package models

import "time"

// Driver is the persisted driver record. LicenseNumber is unique across the
// table and CreatedAt is written once, on insert.
type Driver struct {
	DriverID      uint      `json:"driverId" gorm:"column:driver_id;primaryKey;autoIncrement"`
	FullName      string    `json:"fullName" gorm:"column:full_name;not null" validate:"required"`
	Email         string    `json:"email" gorm:"column:email;not null" validate:"required"`
	Phone         string    `json:"phone" gorm:"column:phone;not null" validate:"required"`
	LicenseNumber string    `json:"licenseNumber" gorm:"column:license_number;uniqueIndex;not null" validate:"required"`
	ExpiryDate    Date      `json:"expiryDate" gorm:"column:expiry_date;type:date;not null" validate:"required"`
	CreatedAt     time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime;not null;<-:create"`
	StarRating    *float64  `json:"starRating" gorm:"column:star_rating"`
	TripCount     *int      `json:"tripCount" gorm:"column:trip_count"`
	HoursThisWeek *float64  `json:"hoursThisWeek" gorm:"column:hours_this_week"`
}

func (Driver) TableName() string { return "drivers" }
