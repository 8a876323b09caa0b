package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/synzk/hub-backend/internal/monitoring"
	"github.com/synzk/hub-backend/internal/store"
	"github.com/synzk/hub-backend/internal/transport/http"
	"github.com/synzk/hub-backend/internal/utils/config"
	"github.com/synzk/hub-backend/internal/utils/logger"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	// storage must be ready before the listener opens; any init failure
	// aborts the process
	s, err := store.New(appConfig, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", map[string]string{
			"error": err.Error(),
		})
	}

	metricsRegistry := prometheus.NewRegistry()
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(metricsRegistry)

	httpServer := http.NewHttpServer(appConfig, logger, s, metricsRegistry, httpMetrics)

	logger.Info("synzk hub backend listening", map[string]string{
		"port": appConfig.ApiServer.Port,
	})

	if err := httpServer.Run(":" + appConfig.ApiServer.Port); err != nil {
		logger.Fatal("http server stopped", map[string]string{
			"error": err.Error(),
		})
	}
}
