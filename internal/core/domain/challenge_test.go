package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

func TestChallengeProgress_Advance(t *testing.T) {
	def := domain.ChallengeDefinition{ID: "kindness_3", Points: 50, Target: 3, Mode: domain.TrackingManual}

	t.Run("Completes when the target is reached", func(t *testing.T) {
		p := domain.NewChallengeProgress("p1", "u1", def.ID)

		require.NoError(t, p.Advance(def, "2026-10-16"))
		require.NoError(t, p.Advance(def, "2026-10-17"))
		assert.Equal(t, domain.ChallengeActive, p.Status)

		require.NoError(t, p.Advance(def, "2026-10-18"))
		assert.Equal(t, domain.ChallengeCompleted, p.Status)
		assert.Equal(t, 3, p.Progress)
		require.NotNil(t, p.LastLoggedDate)
		assert.Equal(t, "2026-10-18", *p.LastLoggedDate)
	})

	t.Run("Same date counts once", func(t *testing.T) {
		p := domain.NewChallengeProgress("p1", "u1", def.ID)

		require.NoError(t, p.Advance(def, "2026-10-16"))
		assert.ErrorIs(t, p.Advance(def, "2026-10-16"), domain.ErrChallengeAlreadyLogged)
		assert.Equal(t, 1, p.Progress)
	})

	t.Run("Completed challenges reject further logs", func(t *testing.T) {
		p := domain.NewChallengeProgress("p1", "u1", def.ID)
		p.Status = domain.ChallengeCompleted

		assert.ErrorIs(t, p.Advance(def, "2026-10-16"), domain.ErrChallengeCompleted)
	})

	t.Run("Invalid date is rejected", func(t *testing.T) {
		p := domain.NewChallengeProgress("p1", "u1", def.ID)

		assert.ErrorIs(t, p.Advance(def, "16/10/2026"), domain.ErrInvalidDateKey)
		assert.Equal(t, 0, p.Progress)
	})
}

func TestChallengeCatalog(t *testing.T) {
	catalog := domain.NewChallengeCatalog([]domain.ChallengeDefinition{
		{ID: "b", Points: 2},
		{ID: "a", Points: 1},
	})

	def, ok := catalog.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, def.Points)

	_, ok = catalog.Lookup("missing")
	assert.False(t, ok)

	list := catalog.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
}
