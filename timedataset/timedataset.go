package timedataset

import (
	"errors"
	"fmt"
	"time"
)

// MinObservations is the smallest history accepted for forecasting. A single
// point provides no interval to infer and no trend to fit.
const MinObservations = 2

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrInsufficientData   = errors.New("insufficient training data")
	ErrDatasetLenMismatch = errors.New("time feature has a different length than observations")
)

// TimeDataset represents a time series storing a slice of time points and values.
// Both must be of the same length. Time points are not required to be sorted or
// unique.
type TimeDataset struct {
	T TimeSlice
	Y []float64
}

// NewUnivariateDataset returns an instance of a TimeDataset given a time and value slice.
func NewUnivariateDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}
	if len(y) < MinObservations {
		return nil, fmt.Errorf(
			"got %d observations, but require at least %d, %w",
			len(y), MinObservations, ErrInsufficientData,
		)
	}

	tSeries := make(TimeSlice, len(t))
	ySeries := make([]float64, len(t))
	copy(tSeries, t)
	copy(ySeries, y)
	td := &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}

	return td, nil
}

func (td *TimeDataset) Copy() *TimeDataset {
	tSeries := make(TimeSlice, len(td.T))
	ySeries := make([]float64, len(td.T))
	copy(tSeries, td.T)
	copy(ySeries, td.Y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}
}
