package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func TestNewTimeRange_Valid(t *testing.T) {
	rng, err := NewTimeRange(ts(9, 0), ts(11, 30))
	assert.NoError(t, err)
	assert.Equal(t, 2.5, rng.Hours())
	assert.Equal(t, 150*time.Minute, rng.Duration())
}

func TestNewTimeRange_EndEqualsStart(t *testing.T) {
	_, err := NewTimeRange(ts(10, 0), ts(10, 0))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestNewTimeRange_EndBeforeStart(t *testing.T) {
	_, err := NewTimeRange(ts(11, 0), ts(9, 0))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestOverlaps(t *testing.T) {
	base := TimeRange{Start: ts(9, 0), End: ts(11, 0)}

	tests := []struct {
		name  string
		other TimeRange
		want  bool
	}{
		{"partial overlap right", TimeRange{ts(10, 0), ts(12, 0)}, true},
		{"partial overlap left", TimeRange{ts(8, 0), ts(10, 0)}, true},
		{"contained", TimeRange{ts(9, 30), ts(10, 30)}, true},
		{"containing", TimeRange{ts(8, 0), ts(12, 0)}, true},
		{"identical", TimeRange{ts(9, 0), ts(11, 0)}, true},
		{"touching end", TimeRange{ts(11, 0), ts(12, 0)}, false},
		{"touching start", TimeRange{ts(8, 0), ts(9, 0)}, false},
		{"disjoint", TimeRange{ts(13, 0), ts(14, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}
