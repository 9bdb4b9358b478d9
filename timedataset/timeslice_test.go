package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartTime(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected time.Time
	}{
		"nil input for start time": {
			tSlice:   nil,
			expected: time.Time{},
		},
		"valid start time": {
			tSlice: TimeSlice([]time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC),
			}),
			expected: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := td.tSlice.StartTime()
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestEndTime(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected time.Time
	}{
		"nil input for end time": {
			tSlice:   nil,
			expected: time.Time{},
		},
		"valid end time": {
			tSlice: TimeSlice([]time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC),
			}),
			expected: time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := td.tSlice.EndTime()
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestInterval(t *testing.T) {
	testData := map[string]struct {
		tSlice   TimeSlice
		expected time.Duration
	}{
		"nil input falls back to default": {
			tSlice:   nil,
			expected: DefaultInterval,
		},
		"single point falls back to default": {
			tSlice: TimeSlice([]time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			}),
			expected: DefaultInterval,
		},
		"duplicate points fall back to default": {
			tSlice: TimeSlice([]time.Time{
				time.Unix(100, 0).UTC(),
				time.Unix(100, 0).UTC(),
			}),
			expected: DefaultInterval,
		},
		"consistent daily cadence": {
			tSlice: TimeSlice([]time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC),
			}),
			expected: 24 * time.Hour,
		},
		"irregular gap keeps dominant cadence": {
			tSlice: TimeSlice([]time.Time{
				time.Unix(0, 0).UTC(),
				time.Unix(86400, 0).UTC(),
				time.Unix(172800, 0).UTC(),
				time.Unix(345600, 0).UTC(),
			}),
			expected: 24 * time.Hour,
		},
		"even diff count averages central elements": {
			tSlice: TimeSlice([]time.Time{
				time.Unix(0, 0).UTC(),
				time.Unix(60, 0).UTC(),
				time.Unix(240, 0).UTC(),
			}),
			expected: 120 * time.Second,
		},
		"out of order diffs are discarded": {
			tSlice: TimeSlice([]time.Time{
				time.Unix(3600, 0).UTC(),
				time.Unix(0, 0).UTC(),
				time.Unix(3600, 0).UTC(),
			}),
			expected: time.Hour,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, td.tSlice.Interval())
		})
	}
}
