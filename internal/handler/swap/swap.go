package swap

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/synzk/hub-backend/internal/model"
	"github.com/synzk/hub-backend/internal/store/swapstore"
	"github.com/synzk/hub-backend/internal/utils/config"
	"github.com/synzk/hub-backend/internal/utils/logger"
	"github.com/synzk/hub-backend/internal/view"
)

type handler struct {
	logger    *logger.Logger
	appConfig *config.AppConfig
	swaps     swapstore.IStore
}

func New(logger *logger.Logger, appConfig *config.AppConfig, swaps swapstore.IStore) IHandler {
	return &handler{
		logger:    logger,
		appConfig: appConfig,
		swaps:     swaps,
	}
}

// Create godoc
// @Summary Create swap
// @Description Validates and queues a cross-chain swap request
// @id createSwap
// @Tags Swap
// @Accept json
// @Produce json
// @Param request body CreateSwapRequest true "Swap request parameters"
// @Success 200 {object} CreateSwapResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /api/swap [post]
func (h *handler) Create(c *gin.Context) {
	var req CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Create][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.Error("invalid_request", err.Error()))
		return
	}

	now := time.Now().UTC()
	swap := &model.Swap{
		ID:        uuid.NewString(),
		Status:    model.SwapStatusQueued,
		Mode:      model.SwapModeBackend,
		CreatedAt: now,
		UpdatedAt: now,
		Body:      req.toBody(),
	}

	if err := h.swaps.Upsert(swap); err != nil {
		h.logger.Error("[Create][Upsert]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.Error("internal_error", "failed to persist swap"))
		return
	}

	c.JSON(http.StatusOK, CreateSwapResponse{
		SwapID: swap.ID,
		Status: swap.Status,
		Mode:   swap.Mode,
	})
}

// GetStatus godoc
// @Summary Get swap status
// @Description Returns the full swap record for an id
// @id getSwapStatus
// @Tags Swap
// @Produce json
// @Param id path string true "Swap ID"
// @Success 200 {object} model.Swap
// @Failure 404 {object} view.ErrorResponse
// @Router /api/status/{id} [get]
func (h *handler) GetStatus(c *gin.Context) {
	swap, err := h.swaps.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, swapstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, view.Error("not_found", ""))
			return
		}
		h.logger.Error("[GetStatus][GetByID]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.Error("internal_error", "failed to load swap"))
		return
	}

	c.JSON(http.StatusOK, swap)
}

// List godoc
// @Summary List recent swaps
// @Description Returns swap records ordered by created_at descending
// @id listSwaps
// @Tags Swap
// @Produce json
// @Param limit query int false "Max records, 1-100, default 50"
// @Success 200 {array} model.Swap
// @Router /api/swaps [get]
func (h *handler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(swapstore.DefaultListLimit)))
	if err != nil {
		limit = swapstore.DefaultListLimit
	}

	swaps, err := h.swaps.List(limit)
	if err != nil {
		h.logger.Error("[List][List]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.Error("internal_error", "failed to list swaps"))
		return
	}

	c.JSON(http.StatusOK, swaps)
}

// Advance godoc
// @Summary Advance swap status
// @Description Moves a swap one step along queued -> sent -> confirmed; failed stays failed. Dev utility with no real settlement behind it.
// @id advanceSwap
// @Tags Swap
// @Produce json
// @Param id path string true "Swap ID"
// @Success 200 {object} model.Swap
// @Failure 404 {object} view.ErrorResponse
// @Router /api/swaps/{id}/advance [post]
func (h *handler) Advance(c *gin.Context) {
	id := c.Param("id")

	swap, err := h.swaps.GetByID(id)
	if err != nil {
		if errors.Is(err, swapstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, view.Error("not_found", ""))
			return
		}
		h.logger.Error("[Advance][GetByID]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.Error("internal_error", "failed to load swap"))
		return
	}

	if err := h.swaps.SetStatus(id, model.NextStatus(swap.Status)); err != nil {
		h.logger.Error("[Advance][SetStatus]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.Error("internal_error", "failed to update swap"))
		return
	}

	updated, err := h.swaps.GetByID(id)
	if err != nil {
		h.logger.Error("[Advance][Reload]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.Error("internal_error", "failed to load swap"))
		return
	}

	c.JSON(http.StatusOK, updated)
}
