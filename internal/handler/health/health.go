package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "synzk-hub"

type HealthHandler struct{}

func New() IHandler {
	return &HealthHandler{}
}

type BasicHealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Time    int64  `json:"time"`
}

// Basic godoc
// @Summary Liveness probe
// @Description Returns service identity and current time in epoch millis
// @id healthBasic
// @Tags Health
// @Produce json
// @Success 200 {object} BasicHealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Basic(c *gin.Context) {
	c.JSON(http.StatusOK, BasicHealthResponse{
		OK:      true,
		Service: serviceName,
		Time:    time.Now().UnixMilli(),
	})
}
