package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the forecast and liveness endpoints onto a fresh gin engine.
func NewRouter(log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log))

	h := NewHandler(log)
	router.GET("/healthz", h.Healthz)

	v1 := router.Group("/v1")
	{
		v1.POST("/forecast", h.Forecast)
	}

	return router
}
