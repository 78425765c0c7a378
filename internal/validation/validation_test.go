package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"fleetops_driver_service/internal/models"
)

type record struct {
	Name   string      `json:"name" validate:"required"`
	Expiry models.Date `json:"expiryDate" validate:"required"`
	Start  string      `json:"startTime" validate:"omitempty,datetime=15:04"`
}

func TestValidator_DateRequired(t *testing.T) {
	v := New()

	err := v.Struct(record{Name: "a"})
	assert.Equal(t, map[string]string{"expiryDate": "is required"}, ToDetails(err))

	assert.NoError(t, v.Struct(record{Name: "a", Expiry: models.NewDate(2026, 1, 1)}))
}

func TestToDetails(t *testing.T) {
	assert.Nil(t, ToDetails(nil))

	var target record
	err := json.Unmarshal([]byte(`{"name":`), &target)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	err = New().Struct(record{Expiry: models.NewDate(2026, 1, 1), Start: "7pm"})
	assert.Equal(t, map[string]string{
		"name":      "is required",
		"startTime": "must match layout 15:04",
	}, ToDetails(err))

	assert.Equal(t, map[string]string{"payload": "boom"}, ToDetails(errors.New("boom")))
}
