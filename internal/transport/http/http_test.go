package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synzk/hub-backend/internal/monitoring"
	"github.com/synzk/hub-backend/internal/store"
	"github.com/synzk/hub-backend/internal/types/environments"
	"github.com/synzk/hub-backend/internal/utils/config"
	"github.com/synzk/hub-backend/internal/utils/logger"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	appConfig := &config.AppConfig{
		Environment: environments.Test,
		ApiServer: config.ApiServerConfig{
			Port:           "8080",
			AllowedOrigins: "*",
		},
	}
	log := logger.New(environments.Test)

	s, err := store.New(appConfig, log)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(registry)

	return NewHttpServer(appConfig, log, s, registry, httpMetrics)
}

func TestSecurityHeaders(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
}

func TestBodySizeLimit(t *testing.T) {
	r := newTestServer(t)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/swap", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	// a normal-sized payload passes through the limiter
	w := post(`{"fromChain":"a","fromToken":"b","toChain":"c","toToken":"d","amount":"1","receiver":"0xreceiver1"}`)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// the same payload with a proofHint pushing it past 1 MiB is rejected
	oversized := `{"fromChain":"a","fromToken":"b","toChain":"c","toToken":"d","amount":"1","receiver":"0xreceiver1","proofHint":"` +
		strings.Repeat("x", maxBodyBytes) + `"}`
	w = post(oversized)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
