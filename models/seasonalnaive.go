package models

const (
	// DefaultSeasonLength is the assumed cycle length in observations when none
	// is configured.
	DefaultSeasonLength = 7

	MinSeasonLength = 1
)

type SeasonalNaiveOptions struct {
	SeasonLength int
}

func NewDefaultSeasonalNaiveOptions() *SeasonalNaiveOptions {
	return &SeasonalNaiveOptions{
		SeasonLength: DefaultSeasonLength,
	}
}

// SeasonalNaive forecasts by replaying the most recently observed full season
// window, cycling forward.
type SeasonalNaive struct {
	opt *SeasonalNaiveOptions
}

// NewSeasonalNaive creates a seasonal naive model from the provided options. If
// no options are provided a default is used. Season lengths below
// MinSeasonLength are clamped.
func NewSeasonalNaive(opt *SeasonalNaiveOptions) *SeasonalNaive {
	if opt == nil {
		opt = NewDefaultSeasonalNaiveOptions()
	}
	o := *opt
	if o.SeasonLength < MinSeasonLength {
		o.SeasonLength = MinSeasonLength
	}
	return &SeasonalNaive{opt: &o}
}

// PredictN cycles through the last SeasonLength observed values with
// wraparound. A history shorter than the season window degenerates to
// repeating the most recent observation.
func (s *SeasonalNaive) PredictN(y []float64, horizon int) []float64 {
	if len(y) == 0 {
		return nil
	}

	season := s.opt.SeasonLength
	preds := make([]float64, 0, horizon)
	if len(y) < season {
		last := y[len(y)-1]
		for i := 0; i < horizon; i++ {
			preds = append(preds, last)
		}
		return preds
	}

	window := y[len(y)-season:]
	for i := 0; i < horizon; i++ {
		preds = append(preds, window[i%season])
	}
	return preds
}
