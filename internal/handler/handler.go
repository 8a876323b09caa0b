package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/synzk/hub-backend/internal/handler/health"
	"github.com/synzk/hub-backend/internal/handler/metrics"
	"github.com/synzk/hub-backend/internal/handler/swap"
	"github.com/synzk/hub-backend/internal/store"
	"github.com/synzk/hub-backend/internal/utils/config"
	"github.com/synzk/hub-backend/internal/utils/logger"
)

type Handler struct {
	SwapHandler    swap.IHandler
	HealthHandler  health.IHandler
	MetricsHandler *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger, s *store.Store,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		SwapHandler:    swap.New(logger, appConfig, s.Swap),
		HealthHandler:  health.New(),
		MetricsHandler: metrics.NewMetricsHandler(metricsRegistry),
	}
}
