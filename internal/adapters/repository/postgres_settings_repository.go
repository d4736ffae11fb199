package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

var (
	_ domain.SettingsRepository      = (*PostgresSettingsRepository)(nil)
	_ domain.StatsSnapshotRepository = (*PostgresSnapshotRepository)(nil)
)

type PostgresSettingsRepository struct {
	db *sqlx.DB
}

func NewPostgresSettingsRepository(db *sqlx.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
        SELECT user_id, quran_chapter, quran_verse, hijri_adjustment, updated_at
        FROM user_settings WHERE user_id = $1`

	s := domain.UserSettings{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &s.QuranPosition.Chapter, &s.QuranPosition.Verse, &s.HijriAdjustment, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultSettings(userID), nil
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &s, nil
}

func (r *PostgresSettingsRepository) Save(ctx context.Context, s *domain.UserSettings) error {
	query := `
        INSERT INTO user_settings (user_id, quran_chapter, quran_verse, hijri_adjustment, updated_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (user_id) DO UPDATE SET
            quran_chapter = EXCLUDED.quran_chapter,
            quran_verse = EXCLUDED.quran_verse,
            hijri_adjustment = EXCLUDED.hijri_adjustment,
            updated_at = NOW()
        RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		s.UserID, s.QuranPosition.Chapter, s.QuranPosition.Verse, s.HijriAdjustment,
	).Scan(&s.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

type PostgresSnapshotRepository struct {
	db *sqlx.DB
}

func NewPostgresSnapshotRepository(db *sqlx.DB) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{db: db}
}

func (r *PostgresSnapshotRepository) Get(ctx context.Context, userID string) (*domain.StatsSnapshot, error) {
	query := `
        SELECT user_id, points, streak, longest_streak, quran_pages, updated_at
        FROM stats_snapshots WHERE user_id = $1`

	var snap domain.StatsSnapshot
	if err := r.db.GetContext(ctx, &snap, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &snap, nil
}

func (r *PostgresSnapshotRepository) Save(ctx context.Context, snap *domain.StatsSnapshot) error {
	query := `
        INSERT INTO stats_snapshots (user_id, points, streak, longest_streak, quran_pages, updated_at)
        VALUES (:user_id, :points, :streak, :longest_streak, :quran_pages, :updated_at)
        ON CONFLICT (user_id) DO UPDATE SET
            points = EXCLUDED.points,
            streak = EXCLUDED.streak,
            longest_streak = EXCLUDED.longest_streak,
            quran_pages = EXCLUDED.quran_pages,
            updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, snap); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
