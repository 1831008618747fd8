package models

import (
	"errors"
	"time"
)

var ErrInvalidTimeRange = errors.New("invalid time range: end must be after start")

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange validates that end is strictly after start.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{Start: start, End: end}, nil
}

func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

func (r TimeRange) Hours() float64 {
	return r.Duration().Seconds() / 3600
}

// Overlaps reports whether two half-open ranges share any instant.
// Touching endpoints ([9,10) vs [10,11)) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}
