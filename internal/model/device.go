package model

import "time"

// Device represents a registered appliance and its declared usage window.
// StartTime and EndTime are wall-clock times of day in "HH:MM" form; the
// window may span midnight. None of the fields are validated on write.
type Device struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:256" json:"name"`
	Wattage   float64   `json:"wattage"`
	StartTime string    `gorm:"size:8" json:"startTime"`
	EndTime   string    `gorm:"size:8" json:"endTime"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
