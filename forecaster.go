package kairos

import (
	"errors"
	"fmt"
	"time"

	"github.com/kairos-ml/kairos/models"
	"github.com/kairos-ml/kairos/timedataset"
)

var (
	ErrUnsupportedModel = errors.New("unsupported model")
	ErrInvalidHorizon   = errors.New("horizon must be at least 1")
)

// Forecaster generates horizon predictions from a labeled historical time
// series. It holds no state across calls and is safe for concurrent use.
type Forecaster struct {
	opt *Options
}

// New creates a new instance of a Forecaster using the provided options. If no
// options are provided a default is used.
func New(opt *Options) *Forecaster {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	return &Forecaster{opt: opt}
}

// Forecast validates the input series, infers its sampling interval, and
// produces one prediction per future step out to horizon. The returned result
// pairs each prediction with a projected time continuing past the last
// historical point.
func (f *Forecaster) Forecast(t []time.Time, y []float64, horizon int) (*Results, error) {
	if horizon < 1 {
		return nil, fmt.Errorf("got %d, %w", horizon, ErrInvalidHorizon)
	}

	td, err := timedataset.NewUnivariateDataset(t, y)
	if err != nil {
		return nil, fmt.Errorf("unable to create training dataset, %w", err)
	}

	model, err := f.model()
	if err != nil {
		return nil, err
	}

	interval := td.T.Interval()
	r := &Results{
		T:        projectTime(td.T.EndTime(), interval, horizon),
		Forecast: model.PredictN(td.Y, horizon),
		Interval: interval,
	}
	return r, nil
}

// model resolves the configured strategy. Upstream parsing makes an unknown
// tag unreachable, but the dispatch still guards against it independently.
func (f *Forecaster) model() (models.Model, error) {
	switch f.opt.Model {
	case ModelSeasonalNaive:
		return models.NewSeasonalNaive(f.opt.SeasonalNaive), nil
	case ModelTrendLinear:
		return models.NewLinearTrend(), nil
	}
	return nil, fmt.Errorf("%q, %w", f.opt.Model, ErrUnsupportedModel)
}

// projectTime continues the observed cadence past the last historical point at
// 1-based future offsets, last + interval*k for k = 1..horizon.
func projectTime(last time.Time, interval time.Duration, horizon int) timedataset.TimeSlice {
	proj := make(timedataset.TimeSlice, 0, horizon)
	for k := 1; k <= horizon; k++ {
		proj = append(proj, last.Add(interval*time.Duration(k)).UTC())
	}
	return proj
}
