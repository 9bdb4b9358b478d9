package models

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LinearTrend forecasts by fitting an ordinary least squares line of value
// against position index and extrapolating it past the observed range.
type LinearTrend struct{}

func NewLinearTrend() *LinearTrend {
	return &LinearTrend{}
}

// PredictN fits the closed-form estimators, slope = cov(index, value)/var(index)
// and intercept = mean(value) - slope*mean(index), and predicts positions
// n..n+horizon-1. A single observation carries no estimable trend and is
// repeated as-is.
func (l *LinearTrend) PredictN(y []float64, horizon int) []float64 {
	if len(y) == 0 {
		return nil
	}

	n := len(y)
	preds := make([]float64, 0, horizon)
	if n == 1 {
		for i := 0; i < horizon; i++ {
			preds = append(preds, y[0])
		}
		return preds
	}

	x := make([]float64, n)
	floats.Span(x, 0, float64(n-1))

	// cannot occur for n >= 2 integer positions, but guard the division anyway
	var slope float64
	if xVar := stat.Variance(x, nil); xVar > 0 {
		slope = stat.Covariance(x, y, nil) / xVar
	}
	intercept := stat.Mean(y, nil) - slope*stat.Mean(x, nil)

	for i := 0; i < horizon; i++ {
		preds = append(preds, intercept+slope*float64(n+i))
	}
	return preds
}
