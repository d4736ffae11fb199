package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var _ domain.ActivityRepository = (*PostgresActivityRepository)(nil)

// PostgresActivityRepository stores one JSONB document per user and date.
type PostgresActivityRepository struct {
	db *sqlx.DB
}

func NewPostgresActivityRepository(db *sqlx.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

type activityRow struct {
	Date    string `db:"activity_date"`
	Payload []byte `db:"payload"`
}

func (r *PostgresActivityRepository) GetLog(ctx context.Context, userID string) (domain.ActivityLog, error) {
	query := `
        SELECT to_char(activity_date, 'YYYY-MM-DD') AS activity_date, payload
        FROM daily_activities
        WHERE user_id = $1
        ORDER BY activity_date`

	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	log := make(domain.ActivityLog, len(rows))
	for _, row := range rows {
		var day domain.DailyActivity
		if err := json.Unmarshal(row.Payload, &day); err != nil {
			return nil, fmt.Errorf("failed to unmarshal activity %s: %w", row.Date, err)
		}
		log[row.Date] = day
	}
	return log, nil
}

func (r *PostgresActivityRepository) GetDay(ctx context.Context, userID, date string) (domain.DailyActivity, error) {
	query := `SELECT payload FROM daily_activities WHERE user_id = $1 AND activity_date = $2`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, userID, date).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DailyActivity{}, nil
		}
		return domain.DailyActivity{}, fmt.Errorf("database scan error: %w", err)
	}

	var day domain.DailyActivity
	if err := json.Unmarshal(payload, &day); err != nil {
		return domain.DailyActivity{}, fmt.Errorf("failed to unmarshal activity: %w", err)
	}
	return day, nil
}

func (r *PostgresActivityRepository) SaveDay(ctx context.Context, userID, date string, activity domain.DailyActivity) error {
	payload, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("failed to marshal activity: %w", err)
	}

	query := `
        INSERT INTO daily_activities (user_id, activity_date, payload, updated_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (user_id, activity_date)
        DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, userID, date, payload); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to save activity: %w", err)
	}
	return nil
}

// SaveReading upserts the day and the reading position in one transaction.
func (r *PostgresActivityRepository) SaveReading(ctx context.Context, userID, date string, activity domain.DailyActivity, position domain.QuranPosition) error {
	payload, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("failed to marshal activity: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reading update: %w", err)
	}
	defer tx.Rollback()

	dayQuery := `
        INSERT INTO daily_activities (user_id, activity_date, payload, updated_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (user_id, activity_date)
        DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`

	positionQuery := `
        INSERT INTO user_settings (user_id, quran_chapter, quran_verse, updated_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (user_id) DO UPDATE SET
            quran_chapter = EXCLUDED.quran_chapter,
            quran_verse = EXCLUDED.quran_verse,
            updated_at = NOW()`

	if _, err := tx.ExecContext(ctx, dayQuery, userID, date, payload); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to save activity: %w", err)
	}
	if _, err := tx.ExecContext(ctx, positionQuery, userID, position.Chapter, position.Verse); err != nil {
		return fmt.Errorf("failed to save position: %w", err)
	}

	return tx.Commit()
}

// Reset clears the log, challenge progress and reading position in one transaction.
func (r *PostgresActivityRepository) Reset(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM daily_activities WHERE user_id = $1`,
		`DELETE FROM challenge_progress WHERE user_id = $1`,
		`UPDATE user_settings SET quran_chapter = 1, quran_verse = 1, updated_at = NOW() WHERE user_id = $1`,
		`DELETE FROM stats_snapshots WHERE user_id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, userID); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
	}

	return tx.Commit()
}
