package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

func TestChallengeService_Join(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Joining creates an active record", func(t *testing.T) {
		repo := new(MockChallengeRepo)
		svc := NewChallengeService(repo, domain.DefaultChallengeCatalog)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.ChallengeProgress")).Return(nil)

		p, err := svc.Join(ctx, testUser, "fajr_week")

		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, domain.ChallengeActive, p.Status)
		assert.Zero(t, p.Progress)
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Unknown challenge", func(t *testing.T) {
		repo := new(MockChallengeRepo)
		svc := NewChallengeService(repo, domain.DefaultChallengeCatalog)

		_, err := svc.Join(ctx, testUser, "moon_landing")

		assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Joining twice", func(t *testing.T) {
		repo := new(MockChallengeRepo)
		svc := NewChallengeService(repo, domain.DefaultChallengeCatalog)
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrChallengeAlreadyJoined)

		_, err := svc.Join(ctx, testUser, "fajr_week")

		assert.ErrorIs(t, err, domain.ErrChallengeAlreadyJoined)
	})
}

func TestChallengeService_Log(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Manual check-in advances progress", func(t *testing.T) {
		repo := new(MockChallengeRepo)
		svc := NewChallengeService(repo, domain.DefaultChallengeCatalog)
		p := domain.NewChallengeProgress("p1", testUser, "kindness_3")
		repo.On("Get", ctx, testUser, "kindness_3").Return(p, nil)
		repo.On("Update", ctx, p).Return(nil)

		got, err := svc.Log(ctx, testUser, "kindness_3", testDate)

		require.NoError(t, err)
		assert.Equal(t, 1, got.Progress)
		require.NotNil(t, got.LastLoggedDate)
		assert.Equal(t, testDate, *got.LastLoggedDate)
	})

	t.Run("Success: Reaching the target completes the challenge", func(t *testing.T) {
		repo := new(MockChallengeRepo)
		svc := NewChallengeService(repo, domain.DefaultChallengeCatalog)
		p := domain.NewChallengeProgress("p1", testUser, "kindness_3")
		p.Progress = 2
		repo.On("Get", ctx, testUser, "kindness_3").Return(p, nil)
		repo.On("Update", ctx, p).Return(nil)

		got, err := svc.Log(ctx, testUser, "kindness_3", testDate)

		require.NoError(t, err)
		assert.Equal(t, domain.ChallengeCompleted, got.Status)
	})

	t.Run("Fail: Auto-tracked challenges reject manual logs", func(t *testing.T) {
		repo := new(MockChallengeRepo)
		svc := NewChallengeService(repo, domain.DefaultChallengeCatalog)

		_, err := svc.Log(ctx, testUser, "fajr_week", testDate)

		assert.ErrorIs(t, err, domain.ErrChallengeAutoTracked)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Fail: Not joined", func(t *testing.T) {
		repo := new(MockChallengeRepo)
		svc := NewChallengeService(repo, domain.DefaultChallengeCatalog)
		repo.On("Get", ctx, testUser, "sadaqah_week").Return(nil, domain.ErrChallengeNotJoined)

		_, err := svc.Log(ctx, testUser, "sadaqah_week", testDate)

		assert.ErrorIs(t, err, domain.ErrChallengeNotJoined)
	})

	t.Run("Fail: Same date twice", func(t *testing.T) {
		repo := new(MockChallengeRepo)
		svc := NewChallengeService(repo, domain.DefaultChallengeCatalog)
		date := testDate
		p := domain.NewChallengeProgress("p1", testUser, "sadaqah_week")
		p.Progress = 1
		p.LastLoggedDate = &date
		repo.On("Get", ctx, testUser, "sadaqah_week").Return(p, nil)

		_, err := svc.Log(ctx, testUser, "sadaqah_week", testDate)

		assert.ErrorIs(t, err, domain.ErrChallengeAlreadyLogged)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestChallengeService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Only matching active auto challenges advance", func(t *testing.T) {
		repo := new(MockChallengeRepo)
		svc := NewChallengeService(repo, domain.DefaultChallengeCatalog)

		done := domain.NewChallengeProgress("p3", testUser, "quran_daily_10")
		done.Status = domain.ChallengeCompleted

		list := []domain.ChallengeProgress{
			*domain.NewChallengeProgress("p1", testUser, "fajr_week"),
			*domain.NewChallengeProgress("p2", testUser, "azkar_month"),
			*done,
			*domain.NewChallengeProgress("p4", testUser, "sadaqah_week"),
		}
		repo.On("ListByUserID", ctx, testUser).Return(list, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(p *domain.ChallengeProgress) bool {
			return p.ChallengeID == "fajr_week" && p.Progress == 1
		})).Return(nil).Once()

		err := svc.Record(ctx, testUser, domain.ActivityPrayerOnTime, testDate)

		require.NoError(t, err)
		repo.AssertExpectations(t)
		repo.AssertNumberOfCalls(t, "Update", 1)
	})

	t.Run("Success: Same day is counted once", func(t *testing.T) {
		repo := new(MockChallengeRepo)
		svc := NewChallengeService(repo, domain.DefaultChallengeCatalog)
		date := testDate
		p := domain.NewChallengeProgress("p1", testUser, "fajr_week")
		p.Progress = 1
		p.LastLoggedDate = &date
		repo.On("ListByUserID", ctx, testUser).Return([]domain.ChallengeProgress{*p}, nil)

		err := svc.Record(ctx, testUser, domain.ActivityPrayerOnTime, testDate)

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Update errors are joined", func(t *testing.T) {
		repo := new(MockChallengeRepo)
		svc := NewChallengeService(repo, domain.DefaultChallengeCatalog)
		dbErr := errors.New("write failed")
		repo.On("ListByUserID", ctx, testUser).Return([]domain.ChallengeProgress{
			*domain.NewChallengeProgress("p1", testUser, "duha_week"),
		}, nil)
		repo.On("Update", ctx, mock.Anything).Return(dbErr)

		err := svc.Record(ctx, testUser, domain.ActivityVoluntary, testDate)

		assert.ErrorIs(t, err, dbErr)
	})
}
