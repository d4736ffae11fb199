package domain

import (
	"context"
	"errors"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrSnapshotNotFound = errors.New("stats snapshot not found")
)

type ActivityRepository interface {
	// GetLog returns a materialized snapshot of every day logged by the user.
	// Callers may read it freely; it is never shared with later writes.
	GetLog(ctx context.Context, userID string) (ActivityLog, error)

	// GetDay returns the activity of a single date, or a zero value when nothing was logged.
	GetDay(ctx context.Context, userID, date string) (DailyActivity, error)

	// SaveDay overwrites the activity of a single date.
	SaveDay(ctx context.Context, userID, date string, activity DailyActivity) error

	// SaveReading overwrites the activity of a single date and moves the
	// user's reading position. Either both writes land or neither does.
	SaveReading(ctx context.Context, userID, date string, activity DailyActivity, position QuranPosition) error

	// Reset wipes the whole log, challenge progress and reading position of the user.
	// Implementations must apply it atomically.
	Reset(ctx context.Context, userID string) error
}

type ChallengeRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]ChallengeProgress, error)

	// Get returns ErrChallengeNotJoined when the user has no record for the challenge.
	Get(ctx context.Context, userID, challengeID string) (*ChallengeProgress, error)

	// Create fails with ErrChallengeAlreadyJoined when a record for the same
	// (user, challenge) pair exists.
	Create(ctx context.Context, progress *ChallengeProgress) error

	Update(ctx context.Context, progress *ChallengeProgress) error
}

type SettingsRepository interface {
	// Get returns default settings when the user never saved any.
	Get(ctx context.Context, userID string) (*UserSettings, error)
	Save(ctx context.Context, settings *UserSettings) error
}

type StatsSnapshotRepository interface {
	Get(ctx context.Context, userID string) (*StatsSnapshot, error)
	Save(ctx context.Context, snapshot *StatsSnapshot) error
}
