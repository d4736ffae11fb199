package workers

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

const queueSize = 100

type StatsSource interface {
	GetStats(ctx context.Context, userID string, now time.Time) (*domain.AggregateStats, error)
}

type StatsJob struct {
	UserID string
}

// StatsWorker recomputes aggregate stats off the request path and persists
// them as a snapshot whenever they changed.
type StatsWorker struct {
	source    StatsSource
	snapshots domain.StatsSnapshotRepository
	jobs      chan StatsJob
	now       func() time.Time
}

func NewStatsWorker(source StatsSource, snapshots domain.StatsSnapshotRepository) *StatsWorker {
	return &StatsWorker{
		source:    source,
		snapshots: snapshots,
		jobs:      make(chan StatsJob, queueSize),
		now:       time.Now,
	}
}

func (w *StatsWorker) Start(ctx context.Context) {
	go func() {
		log.Info("stats worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Info("stats worker shutting down")
				return
			}
		}
	}()
}

// Enqueue never blocks: when the queue is full the job is dropped and the
// snapshot catches up on the user's next write.
func (w *StatsWorker) Enqueue(userID string) {
	select {
	case w.jobs <- StatsJob{UserID: userID}:
	default:
		log.Warn("stats worker queue full, dropping job", "user", userID)
	}
}

func (w *StatsWorker) processJob(ctx context.Context, job StatsJob) {
	stats, err := w.source.GetStats(ctx, job.UserID, w.now())
	if err != nil {
		log.Error("stats worker: compute failed", "user", job.UserID, "err", err)
		return
	}

	current, err := w.snapshots.Get(ctx, job.UserID)
	if err != nil && !errors.Is(err, domain.ErrSnapshotNotFound) {
		log.Error("stats worker: load snapshot failed", "user", job.UserID, "err", err)
		return
	}
	if current != nil && current.Matches(*stats) {
		return
	}

	snapshot := &domain.StatsSnapshot{
		UserID:        job.UserID,
		Points:        stats.Points,
		Streak:        stats.Streak,
		LongestStreak: stats.LongestStreak,
		QuranPages:    stats.QuranPages,
		UpdatedAt:     w.now().UTC(),
	}
	if err := w.snapshots.Save(ctx, snapshot); err != nil {
		log.Error("stats worker: save snapshot failed", "user", job.UserID, "err", err)
		return
	}
	log.Debug("stats snapshot updated", "user", job.UserID, "points", snapshot.Points, "streak", snapshot.Streak)
}
