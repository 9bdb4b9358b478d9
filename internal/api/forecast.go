package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/kairos-ml/kairos"
	"github.com/kairos-ml/kairos/models"
)

type ForecastRequest struct {
	Model   string          `json:"model"`
	DS      []int64         `json:"ds"`
	Y       []float64       `json:"y"`
	Horizon int             `json:"horizon"`
	Config  *ForecastConfig `json:"config"`
}

// ForecastConfig carries per-model tuning. Unrecognized keys are ignored, not
// rejected.
type ForecastConfig struct {
	SeasonLength *int `json:"seasonLength"`
}

type ForecastPoint struct {
	T         string   `json:"t"`
	Yhat      float64  `json:"yhat"`
	YhatLower *float64 `json:"yhatLower"`
	YhatUpper *float64 `json:"yhatUpper"`
	IsFuture  bool     `json:"isFuture"`
}

type ForecastMetrics struct {
	SampleCount int      `json:"sampleCount"`
	MAE         *float64 `json:"mae"`
	RMSE        *float64 `json:"rmse"`
	MAPE        *float64 `json:"mape"`
}

type ForecastMeta struct {
	Horizon       int             `json:"horizon"`
	HistoryCount  int             `json:"historyCount"`
	IntervalLevel *float64        `json:"intervalLevel"`
	Metrics       ForecastMetrics `json:"metrics"`
}

type ForecastResponse struct {
	Points []ForecastPoint `json:"points"`
	Meta   ForecastMeta    `json:"meta"`
}

// Forecast handles POST /v1/forecast. The response carries either exactly
// horizon points or an error with none.
func (h *Handler) Forecast(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.writeError(c, http.StatusBadRequest, fmt.Errorf("unable to read request body, %w", err))
		return
	}

	var req ForecastRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(c, http.StatusBadRequest, fmt.Errorf("invalid request body, %w", err))
		return
	}

	model, err := kairos.ParseModelType(req.Model)
	if err != nil {
		h.writeError(c, http.StatusBadRequest, err)
		return
	}

	opt := &kairos.Options{Model: model}
	if model == kairos.ModelSeasonalNaive {
		snOpt := models.NewDefaultSeasonalNaiveOptions()
		if req.Config != nil && req.Config.SeasonLength != nil {
			snOpt.SeasonLength = *req.Config.SeasonLength
		}
		opt.SeasonalNaive = snOpt
	}

	t := make([]time.Time, 0, len(req.DS))
	for _, sec := range req.DS {
		t = append(t, time.Unix(sec, 0).UTC())
	}

	start := time.Now()
	res, err := kairos.New(opt).Forecast(t, req.Y, req.Horizon)
	if err != nil {
		h.writeError(c, statusFromErr(err), err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"model":    string(model),
		"horizon":  req.Horizon,
		"history":  len(req.DS),
		"interval": res.Interval,
		"duration": time.Since(start),
	}).Debug("forecast generated")

	h.writeJSON(c, http.StatusOK, assembleResponse(res, req.Horizon, len(req.DS)))
}

// assembleResponse shapes the engine result into the wire contract. Bounds,
// interval level, and accuracy metrics are never populated since no held-out
// evaluation is performed.
func assembleResponse(res *kairos.Results, horizon, historyCount int) ForecastResponse {
	points := make([]ForecastPoint, 0, len(res.Forecast))
	for i := range res.Forecast {
		points = append(points, ForecastPoint{
			T:        res.T[i].Format(time.RFC3339),
			Yhat:     res.Forecast[i],
			IsFuture: true,
		})
	}
	return ForecastResponse{
		Points: points,
		Meta: ForecastMeta{
			Horizon:      horizon,
			HistoryCount: historyCount,
			Metrics:      ForecastMetrics{SampleCount: 0},
		},
	}
}
