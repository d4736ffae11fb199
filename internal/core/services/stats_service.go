package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

type StatsService struct {
	activityRepo  domain.ActivityRepository
	challengeRepo domain.ChallengeRepository
	snapshots     domain.StatsSnapshotRepository
	catalog       domain.ChallengeCatalog
}

func NewStatsService(activityRepo domain.ActivityRepository, challengeRepo domain.ChallengeRepository, snapshots domain.StatsSnapshotRepository, catalog domain.ChallengeCatalog) *StatsService {
	return &StatsService{
		activityRepo:  activityRepo,
		challengeRepo: challengeRepo,
		snapshots:     snapshots,
		catalog:       catalog,
	}
}

// GetStats aggregates the user's full history as seen at now.
func (s *StatsService) GetStats(ctx context.Context, userID string, now time.Time) (*domain.AggregateStats, error) {
	log, err := s.activityRepo.GetLog(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress, err := s.challengeRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := domain.ComputeStats(domain.StatsInput{
		Log:        log,
		Progress:   progress,
		Challenges: s.catalog,
		Now:        now,
	})
	return &stats, nil
}

func (s *StatsService) GetSnapshot(ctx context.Context, userID string) (*domain.StatsSnapshot, error) {
	return s.snapshots.Get(ctx, userID)
}
