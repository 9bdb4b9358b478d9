// Package models is a collection of horizon forecasting implementations to be
// used in the forecaster
package models

// Model produces a sequence of future point predictions from a historical value
// series. Implementations are stateless and safe for concurrent use.
type Model interface {
	PredictN(y []float64, horizon int) []float64
}
