package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Basic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/health", New().Basic)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/health", nil)

	before := time.Now().UnixMilli()
	router.ServeHTTP(w, req)
	after := time.Now().UnixMilli()

	assert.Equal(t, http.StatusOK, w.Code)

	var response BasicHealthResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.OK)
	assert.Equal(t, "synzk-hub", response.Service)
	assert.GreaterOrEqual(t, response.Time, before)
	assert.LessOrEqual(t, response.Time, after)
}
