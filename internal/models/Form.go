// internal/models/Form.go
package models

import "time"

// Form is a document a driver submitted, such as an inspection or incident report.
type Form struct {
	FormID        uint      `json:"formId" gorm:"column:form_id;primaryKey;autoIncrement"`
	DriverID      uint      `json:"driverId" gorm:"column:driver_id;index"`
	FormType      string    `json:"formType" gorm:"column:form_type;not null" validate:"required"`
	Status        string    `json:"status" gorm:"column:status;not null" validate:"required"`
	SubmittedDate Date      `json:"submittedDate" gorm:"column:submitted_date;type:date;not null" validate:"required"`
	Notes         *string   `json:"notes" gorm:"column:notes"`
	CreatedAt     time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime;not null;<-:create"`
}

func (Form) TableName() string { return "forms" }
