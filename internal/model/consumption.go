package model

import "time"

// Consumption is a derived snapshot of a device's energy use, written once
// right after the device itself. DeviceID is a loose reference: it is
// indexed but carries no foreign-key constraint, and the snapshot is never
// recomputed if the device changes.
type Consumption struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	DeviceID        string    `gorm:"index;size:36" json:"deviceId"`
	KWh             float64   `gorm:"column:kwh" json:"kWh"`
	Cost            float64   `json:"cost"`
	CarbonFootprint float64   `json:"carbonFootprint"`
	Date            string    `gorm:"size:10" json:"date"`
	CreatedAt       time.Time `json:"-"`
}
