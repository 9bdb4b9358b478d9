package timedataset

import (
	"sort"
	"time"
)

// DefaultInterval is the spacing assumed between observations when none can be
// inferred from the training data time.
const DefaultInterval = 24 * time.Hour

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}

	lastTime = t[len(t)-1]
	return lastTime
}

// Interval derives a representative sampling interval from the time points at
// whole second resolution. It takes the median of the positive successive
// differences so occasional gaps do not skew the dominant cadence. Non-positive
// differences from out-of-order or duplicate time points are discarded; if no
// positive difference remains the result falls back to DefaultInterval.
func (t TimeSlice) Interval() time.Duration {
	diffs := make([]int64, 0, len(t))
	for i := 1; i < len(t); i++ {
		diff := t[i].Unix() - t[i-1].Unix()
		if diff > 0 {
			diffs = append(diffs, diff)
		}
	}
	if len(diffs) == 0 {
		return DefaultInterval
	}

	sort.Slice(diffs, func(i, j int) bool { return diffs[i] < diffs[j] })
	mid := len(diffs) / 2
	if len(diffs)%2 == 1 {
		return time.Duration(diffs[mid]) * time.Second
	}
	return time.Duration((diffs[mid-1]+diffs[mid])/2) * time.Second
}
