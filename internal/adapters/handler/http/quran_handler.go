package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

// QuranHandler serves the static page approximation; it needs no user.
type QuranHandler struct {
	table      domain.QuranTable
	totalPages int
}

func NewQuranHandler() *QuranHandler {
	return &QuranHandler{
		table:      domain.DefaultQuranTable,
		totalPages: domain.QuranTotalPages,
	}
}

type pageResponse struct {
	Chapter    int `json:"chapter"`
	Verse      int `json:"verse"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

func (h *QuranHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/quran/page", h.Page)
}

// Page godoc
// @Summary  Approximate mushaf page of a verse
// @Tags     quran
// @Produce  json
// @Param    chapter query int true "1-114"
// @Param    verse   query int true "verse within the chapter"
// @Success  200 {object} pageResponse
// @Failure  400 {object} map[string]string
// @Router   /quran/page [get]
func (h *QuranHandler) Page(c *gin.Context) {
	chapter, err1 := strconv.Atoi(c.Query("chapter"))
	verse, err2 := strconv.Atoi(c.Query("verse"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chapter and verse must be integers"})
		return
	}

	pos := domain.QuranPosition{Chapter: chapter, Verse: verse}
	if err := pos.Validate(h.table); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pageResponse{
		Chapter:    chapter,
		Verse:      verse,
		Page:       domain.ApproximatePage(pos, h.table, h.totalPages),
		TotalPages: h.totalPages,
	})
}
