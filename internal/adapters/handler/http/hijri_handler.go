package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
	"github.com/comitanigiacomo/noor-sync-engine/internal/core/services"
)

type HijriHandler struct {
	svc *services.HijriService
	now func() time.Time
}

func NewHijriHandler(svc *services.HijriService) *HijriHandler {
	return &HijriHandler{svc: svc, now: time.Now}
}

type adjustmentRequest struct {
	Adjustment *int `json:"adjustment" binding:"required"`
}

func (h *HijriHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/hijri/today", h.Today)
	router.PUT("/settings/hijri-adjustment", h.SetAdjustment)
}

// Today godoc
// @Summary  The user's Hijri date, adjustment applied
// @Tags     hijri
// @Produce  json
// @Param    date query string false "Gregorian YYYY-MM-DD, defaults to today"
// @Success  200 {object} services.HijriDay
// @Security BearerAuth
// @Router   /hijri/today [get]
func (h *HijriHandler) Today(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	day := h.now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := domain.ParseDateKey(raw, nil)
		if err != nil {
			handleError(c, err)
			return
		}
		day = parsed
	}

	res, err := h.svc.Today(c.Request.Context(), userID, day)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SetAdjustment godoc
// @Summary  Shift the Hijri date by -2..+2 days
// @Tags     hijri
// @Accept   json
// @Produce  json
// @Param    body body adjustmentRequest true "adjustment"
// @Success  200 {object} domain.UserSettings
// @Failure  400 {object} map[string]string
// @Security BearerAuth
// @Router   /settings/hijri-adjustment [put]
func (h *HijriHandler) SetAdjustment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req adjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.svc.SetAdjustment(c.Request.Context(), userID, *req.Adjustment)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
