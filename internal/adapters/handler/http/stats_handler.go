package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
	now func() time.Time
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc, now: time.Now}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetStats)
	r.GET("/stats/snapshot", h.GetSnapshot)
}

// GetStats godoc
// @Summary  Aggregate statistics over the whole log
// @Description The optional now parameter (RFC 3339) fixes the reference time and
// @Description the client's timezone for the weekly, monthly and streak windows.
// @Tags     stats
// @Produce  json
// @Param    now query string false "RFC 3339 timestamp"
// @Success  200 {object} domain.AggregateStats
// @Security BearerAuth
// @Router   /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	now := h.now()
	if raw := c.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid now, expected RFC 3339"})
			return
		}
		now = parsed
	}

	stats, err := h.svc.GetStats(c.Request.Context(), userID, now)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetSnapshot godoc
// @Summary  Last snapshot persisted by the background worker
// @Tags     stats
// @Produce  json
// @Success  200 {object} domain.StatsSnapshot
// @Failure  404 {object} map[string]string
// @Security BearerAuth
// @Router   /stats/snapshot [get]
func (h *StatsHandler) GetSnapshot(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	snap, err := h.svc.GetSnapshot(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
