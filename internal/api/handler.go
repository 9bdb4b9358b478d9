// Package api exposes the forecasting engine over a single synchronous
// request/response exchange.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/kairos-ml/kairos"
	"github.com/kairos-ml/kairos/timedataset"
)

type Handler struct {
	log *logrus.Logger
}

func NewHandler(log *logrus.Logger) *Handler {
	return &Handler{log: log}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(c *gin.Context, code int, v any) {
	buf, err := json.Marshal(v)
	if err != nil {
		h.log.WithError(err).Error("unable to marshal response")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(code, "application/json; charset=utf-8", buf)
}

func (h *Handler) writeError(c *gin.Context, code int, err error) {
	h.writeJSON(c, code, ErrorResponse{Error: err.Error()})
	c.Abort()
}

// statusFromErr classifies forecast failures. Every error the engine can
// surface is a client-input error; anything unrecognized is treated as
// internal.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, timedataset.ErrNoTrainingData),
		errors.Is(err, timedataset.ErrInsufficientData),
		errors.Is(err, timedataset.ErrDatasetLenMismatch),
		errors.Is(err, kairos.ErrInvalidHorizon),
		errors.Is(err, kairos.ErrUnsupportedModel):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
