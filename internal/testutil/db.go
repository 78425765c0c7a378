// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fleetops_driver_service/internal/config"
	"fleetops_driver_service/internal/models"
)

// NewDB returns a migrated SQLite database living in t.TempDir().
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fleetops.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Driver returns a valid driver with the given license number.
func Driver(licenseNumber string) models.Driver {
	rating := 4.5
	trips := 12
	hours := 31.5
	return models.Driver{
		FullName:      "Jane Doe",
		Email:         "jane.doe@fleetops.test",
		Phone:         "+1-555-0100",
		LicenseNumber: licenseNumber,
		ExpiryDate:    models.NewDate(2026, time.January, 1),
		StarRating:    &rating,
		TripCount:     &trips,
		HoursThisWeek: &hours,
	}
}
