package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

var badRequestErrors = []error{
	domain.ErrInvalidDateKey,
	domain.ErrInvalidPrayer,
	domain.ErrInvalidFardStatus,
	domain.ErrInvalidVoluntary,
	domain.ErrInvalidVoluntaryVal,
	domain.ErrInvalidGoal,
	domain.ErrGoalTooLong,
	domain.ErrInvalidZikrCount,
	domain.ErrUnknownZikr,
	domain.ErrInvalidQuranPosition,
	domain.ErrInvalidHijriAdjustment,
	domain.ErrActivityUserRequired,
	domain.ErrChallengeAutoTracked,
	domain.ErrInvalidEmail,
	domain.ErrPasswordTooShort,
	domain.ErrDisplayNameTooLong,
}

var notFoundErrors = []error{
	domain.ErrChallengeNotFound,
	domain.ErrChallengeNotJoined,
	domain.ErrSnapshotNotFound,
	domain.ErrUserNotFound,
}

var conflictErrors = []error{
	domain.ErrEmailAlreadyExists,
	domain.ErrChallengeAlreadyJoined,
	domain.ErrChallengeAlreadyLogged,
	domain.ErrChallengeCompleted,
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// handleError writes the response for err. Domain errors keep their message;
// anything else is attached to the context and hidden behind a 500.
func handleError(c *gin.Context, err error) {
	switch {
	case isAny(err, badRequestErrors):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isAny(err, notFoundErrors):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case isAny(err, conflictErrors):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
