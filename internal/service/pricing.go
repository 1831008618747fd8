package service

import (
	"math"

	"github.com/coworkly/coworking-booking/internal/models"
)

// TotalPrice computes the cost of a booking: duration in hours times the
// workspace hourly rate, rounded to 2 decimal places. Ties round half away
// from zero.
func TotalPrice(rng models.TimeRange, pricePerHour float64) float64 {
	return math.Round(rng.Hours()*pricePerHour*100) / 100
}
