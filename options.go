package kairos

import (
	"fmt"

	"github.com/kairos-ml/kairos/models"
)

// ModelType selects the forecasting strategy to dispatch to.
type ModelType string

const (
	// ModelSeasonalNaive replays the most recently observed full season window.
	ModelSeasonalNaive ModelType = "SEASONAL_NAIVE"
	// ModelTrendLinear extrapolates an ordinary least squares line over the index.
	ModelTrendLinear ModelType = "TREND_LINEAR"
)

// ParseModelType maps a wire label onto a ModelType, rejecting anything outside
// the enumeration.
func ParseModelType(label string) (ModelType, error) {
	switch mt := ModelType(label); mt {
	case ModelSeasonalNaive, ModelTrendLinear:
		return mt, nil
	}
	return "", fmt.Errorf("%q, %w", label, ErrUnsupportedModel)
}

type Options struct {
	Model ModelType

	// SeasonalNaive only applies when Model is ModelSeasonalNaive. Leaving it
	// nil uses the model defaults.
	SeasonalNaive *models.SeasonalNaiveOptions
}

func NewDefaultOptions() *Options {
	return &Options{
		Model:         ModelSeasonalNaive,
		SeasonalNaive: models.NewDefaultSeasonalNaiveOptions(),
	}
}
