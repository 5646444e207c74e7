// Package energy derives consumption figures from a device's wattage and
// its declared usage window.
package energy

import (
	"math"
	"time"

	"energy-tracker-backend/internal/model"
)

const (
	// RatePerKWh is the fixed electricity price in currency units per kWh.
	RatePerKWh = 0.12
	// CarbonFactor is the fixed emission estimate in kg CO2 per kWh.
	CarbonFactor = 0.4
)

const clockLayout = "15:04"

// UsageHours returns the length of the usage window in hours. Both times are
// interpreted on the same reference day; a window whose end precedes its
// start wraps past midnight (22:00 to 06:00 is 8 hours). An exactly equal
// pair is a zero-length window, not a full-day wrap. Malformed input yields
// NaN rather than an error.
func UsageHours(startTime, endTime string) float64 {
	start, err := time.Parse(clockLayout, startTime)
	if err != nil {
		return math.NaN()
	}
	end, err := time.Parse(clockLayout, endTime)
	if err != nil {
		return math.NaN()
	}

	hours := end.Sub(start).Hours()
	if hours < 0 {
		hours += 24
	}
	return hours
}

// Snapshot computes the consumption record for a device's usage window.
// Wattage is taken as-is; negative or nonsensical values flow through the
// arithmetic unchecked, and a malformed window propagates as NaN. The date
// stamp is taken from the supplied clock value.
func Snapshot(wattage float64, startTime, endTime string, now time.Time) model.Consumption {
	kwh := wattage * UsageHours(startTime, endTime) / 1000
	return model.Consumption{
		KWh:             kwh,
		Cost:            kwh * RatePerKWh,
		CarbonFootprint: kwh * CarbonFactor,
		Date:            now.Format("2006-01-02"),
	}
}
