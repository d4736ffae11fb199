package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
	"github.com/comitanigiacomo/noor-sync-engine/internal/core/services"
)

type ChallengeHandler struct {
	svc *services.ChallengeService
	now func() time.Time
}

func NewChallengeHandler(svc *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{svc: svc, now: time.Now}
}

type challengeLogRequest struct {
	Date string `json:"date"`
}

func (h *ChallengeHandler) RegisterRoutes(router *gin.RouterGroup) {
	challenges := router.Group("/challenges")
	{
		challenges.GET("", h.Catalog)
		challenges.GET("/progress", h.Progress)
		challenges.POST("/:id/join", h.Join)
		challenges.POST("/:id/log", h.Log)
	}
}

// Catalog godoc
// @Summary  Available challenges
// @Tags     challenges
// @Produce  json
// @Success  200 {array} domain.ChallengeDefinition
// @Security BearerAuth
// @Router   /challenges [get]
func (h *ChallengeHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Catalog())
}

// Progress godoc
// @Summary  Challenges joined by the user
// @Tags     challenges
// @Produce  json
// @Success  200 {array} domain.ChallengeProgress
// @Security BearerAuth
// @Router   /challenges/progress [get]
func (h *ChallengeHandler) Progress(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	list, err := h.svc.ListProgress(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	if list == nil {
		list = []domain.ChallengeProgress{}
	}
	c.JSON(http.StatusOK, list)
}

// Join godoc
// @Summary  Join a challenge
// @Tags     challenges
// @Produce  json
// @Param    id path string true "challenge id"
// @Success  201 {object} domain.ChallengeProgress
// @Failure  404,409 {object} map[string]string
// @Security BearerAuth
// @Router   /challenges/{id}/join [post]
func (h *ChallengeHandler) Join(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	progress, err := h.svc.Join(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, progress)
}

// Log godoc
// @Summary  Manual check-in for a challenge
// @Tags     challenges
// @Accept   json
// @Produce  json
// @Param    id   path string              true  "challenge id"
// @Param    body body challengeLogRequest false "date, defaults to today"
// @Success  200 {object} domain.ChallengeProgress
// @Failure  400,404,409 {object} map[string]string
// @Security BearerAuth
// @Router   /challenges/{id}/log [post]
func (h *ChallengeHandler) Log(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req challengeLogRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Date == "" {
		req.Date = domain.DateKey(h.now())
	}

	progress, err := h.svc.Log(c.Request.Context(), userID, c.Param("id"), req.Date)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
