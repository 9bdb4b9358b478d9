package kairos

import (
	"time"

	"github.com/kairos-ml/kairos/timedataset"
)

// Results pairs each predicted value with its projected time. Interval carries
// the inferred spacing used for the projection.
type Results struct {
	T        timedataset.TimeSlice `json:"time"`
	Forecast []float64             `json:"forecast"`
	Interval time.Duration         `json:"interval"`
}
