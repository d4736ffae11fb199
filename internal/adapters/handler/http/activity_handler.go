package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/noor-sync-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
	"github.com/comitanigiacomo/noor-sync-engine/internal/core/services"
)

type ActivityHandler struct {
	svc *services.ActivityService
	now func() time.Time
}

func NewActivityHandler(svc *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc, now: time.Now}
}

type prayerRequest struct {
	Fard         domain.FardStatus `json:"fard" binding:"required"`
	SunnahBefore bool              `json:"sunnah_before"`
	SunnahAfter  bool              `json:"sunnah_after"`
}

type zikrRequest struct {
	Set    domain.AzkarSetID `json:"set" binding:"required"`
	ItemID string            `json:"item_id" binding:"required"`
	Count  int               `json:"count"`
}

type voluntaryRequest struct {
	Value int `json:"value"`
}

type goalRequest struct {
	Done bool `json:"done"`
}

type quranPositionRequest struct {
	Chapter int `json:"chapter" binding:"required"`
	Verse   int `json:"verse" binding:"required"`
	// Date receives the pages read; it defaults to the server's today.
	Date string `json:"date"`
}

type exportResponse struct {
	UserID     string             `json:"user_id"`
	ExportedAt time.Time          `json:"exported_at"`
	Log        domain.ActivityLog `json:"log"`
}

func (h *ActivityHandler) RegisterRoutes(router *gin.RouterGroup) {
	days := router.Group("/days/:date")
	{
		days.GET("", h.GetDay)
		days.PUT("/prayers/:prayer", h.SetPrayer)
		days.POST("/azkar", h.AddZikr)
		days.PUT("/voluntary/:id", h.SetVoluntary)
		days.PUT("/goals/:id", h.SetGoal)
	}

	router.PUT("/quran/position", h.UpdateQuranPosition)
	router.GET("/activity/export", h.Export)
	router.DELETE("/activity", h.Reset)
}

// GetDay godoc
// @Summary  Activity logged on a date
// @Tags     activity
// @Produce  json
// @Param    date path string true "YYYY-MM-DD"
// @Success  200 {object} domain.DailyActivity
// @Security BearerAuth
// @Router   /days/{date} [get]
func (h *ActivityHandler) GetDay(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	day, err := h.svc.GetDay(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// SetPrayer godoc
// @Summary  Record the status of an obligatory prayer
// @Tags     activity
// @Accept   json
// @Produce  json
// @Param    date   path string        true "YYYY-MM-DD"
// @Param    prayer path string        true "fajr, dhuhr, asr, maghrib or isha"
// @Param    body   body prayerRequest true "status"
// @Success  200 {object} domain.DailyActivity
// @Security BearerAuth
// @Router   /days/{date}/prayers/{prayer} [put]
func (h *ActivityHandler) SetPrayer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req prayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := h.svc.SetPrayerStatus(c.Request.Context(), services.SetPrayerInput{
		UserID:       userID,
		Date:         c.Param("date"),
		Prayer:       domain.PrayerID(c.Param("prayer")),
		Fard:         req.Fard,
		SunnahBefore: req.SunnahBefore,
		SunnahAfter:  req.SunnahAfter,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// AddZikr godoc
// @Summary  Add repetitions to a remembrance item
// @Tags     activity
// @Accept   json
// @Produce  json
// @Param    date path string      true "YYYY-MM-DD"
// @Param    body body zikrRequest true "item and count"
// @Success  200 {object} domain.DailyActivity
// @Security BearerAuth
// @Router   /days/{date}/azkar [post]
func (h *ActivityHandler) AddZikr(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req zikrRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	day, err := h.svc.AddZikr(c.Request.Context(), services.AddZikrInput{
		UserID: userID,
		Date:   c.Param("date"),
		Set:    req.Set,
		ItemID: req.ItemID,
		Count:  req.Count,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// SetVoluntary godoc
// @Summary  Record a voluntary prayer or fast
// @Tags     activity
// @Accept   json
// @Produce  json
// @Param    date path string           true "YYYY-MM-DD"
// @Param    id   path string           true "duha, witr, qiyam, tahajjud or fasting"
// @Param    body body voluntaryRequest true "value"
// @Success  200 {object} domain.DailyActivity
// @Security BearerAuth
// @Router   /days/{date}/voluntary/{id} [put]
func (h *ActivityHandler) SetVoluntary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req voluntaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := h.svc.SetVoluntaryPrayer(c.Request.Context(), services.SetVoluntaryInput{
		UserID: userID,
		Date:   c.Param("date"),
		ID:     c.Param("id"),
		Value:  req.Value,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// SetGoal godoc
// @Summary  Tick or untick a personal goal
// @Tags     activity
// @Accept   json
// @Produce  json
// @Param    date path string      true "YYYY-MM-DD"
// @Param    id   path string      true "goal id"
// @Param    body body goalRequest true "done flag"
// @Success  200 {object} domain.DailyActivity
// @Security BearerAuth
// @Router   /days/{date}/goals/{id} [put]
func (h *ActivityHandler) SetGoal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := h.svc.SetGoal(c.Request.Context(), services.SetGoalInput{
		UserID: userID,
		Date:   c.Param("date"),
		GoalID: c.Param("id"),
		Done:   req.Done,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// UpdateQuranPosition godoc
// @Summary  Move the reading position and credit the pages read
// @Tags     quran
// @Accept   json
// @Produce  json
// @Param    body body quranPositionRequest true "new position"
// @Success  200 {object} services.QuranUpdate
// @Security BearerAuth
// @Router   /quran/position [put]
func (h *ActivityHandler) UpdateQuranPosition(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req quranPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = domain.DateKey(h.now())
	}

	res, err := h.svc.UpdateQuranPosition(c.Request.Context(), services.UpdateQuranInput{
		UserID:   userID,
		Date:     req.Date,
		Position: domain.QuranPosition{Chapter: req.Chapter, Verse: req.Verse},
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Export godoc
// @Summary  Download the whole activity log
// @Tags     activity
// @Produce  json
// @Success  200 {object} exportResponse
// @Security BearerAuth
// @Router   /activity/export [get]
func (h *ActivityHandler) Export(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	log, err := h.svc.GetLog(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="noor-activity.json"`)
	c.JSON(http.StatusOK, exportResponse{
		UserID:     userID,
		ExportedAt: h.now().UTC(),
		Log:        log,
	})
}

// Reset godoc
// @Summary  Delete every logged day, challenge progress and the reading position
// @Tags     activity
// @Success  204
// @Security BearerAuth
// @Router   /activity [delete]
func (h *ActivityHandler) Reset(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.svc.Reset(c.Request.Context(), userID); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func requireUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return userID, true
}
