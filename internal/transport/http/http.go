package http

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/synzk/hub-backend/internal/handler"
	"github.com/synzk/hub-backend/internal/monitoring"
	"github.com/synzk/hub-backend/internal/store"
	"github.com/synzk/hub-backend/internal/utils/config"
	"github.com/synzk/hub-backend/internal/utils/logger"
)

// maxBodyBytes caps JSON request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

func setupCORS(r *gin.Engine, cfg *config.AppConfig) {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders: []string{
			"Origin", "Host", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Accept",
			"X-CSRF-Token", "Authorization", "X-Requested-With", "X-Access-Token",
		},
	}

	if cfg.ApiServer.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.ApiServer.AllowedOrigins, ";")
		corsConfig.AllowCredentials = true
	}

	r.Use(cors.New(corsConfig))
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Next()
	}
}

func limitBodySize() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		c.Next()
	}
}

func NewHttpServer(appConfig *config.AppConfig, logger *logger.Logger, s *store.Store,
	metricsRegistry *prometheus.Registry, httpMetrics *monitoring.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.LoggerWithWriter(gin.DefaultWriter, "/api/health"),
		gin.Recovery(),
		securityHeaders(),
		limitBodySize(),
		monitoring.HTTPMetricsMiddleware(httpMetrics),
	)
	setupCORS(r, appConfig)

	h := handler.New(appConfig, logger, s, metricsRegistry)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", h.MetricsHandler.Handler())

	loadAPIRoutes(r, h)

	return r
}
