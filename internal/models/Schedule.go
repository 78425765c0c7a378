// internal/models/Schedule.go
package models

import "time"

// Schedule is one driver shift. StartTime and EndTime are HH:MM on ShiftDate.
type Schedule struct {
	ScheduleID uint      `json:"scheduleId" gorm:"column:schedule_id;primaryKey;autoIncrement"`
	DriverID   uint      `json:"driverId" gorm:"column:driver_id;index"`
	ShiftDate  Date      `json:"shiftDate" gorm:"column:shift_date;type:date;not null" validate:"required"`
	StartTime  string    `json:"startTime" gorm:"column:start_time;not null" validate:"required,datetime=15:04"`
	EndTime    string    `json:"endTime" gorm:"column:end_time;not null" validate:"required,datetime=15:04"`
	Route      string    `json:"route" gorm:"column:route;not null" validate:"required"`
	CreatedAt  time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime;not null;<-:create"`
}

func (Schedule) TableName() string { return "schedules" }
