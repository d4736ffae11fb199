package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

var _ domain.ChallengeRepository = (*PostgresChallengeRepository)(nil)

type PostgresChallengeRepository struct {
	db *sqlx.DB
}

func NewPostgresChallengeRepository(db *sqlx.DB) *PostgresChallengeRepository {
	return &PostgresChallengeRepository{db: db}
}

const challengeColumns = `
        id, user_id, challenge_id, status, progress,
        to_char(last_logged_date, 'YYYY-MM-DD') AS last_logged_date,
        created_at, updated_at`

func (r *PostgresChallengeRepository) ListByUserID(ctx context.Context, userID string) ([]domain.ChallengeProgress, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenge_progress WHERE user_id = $1 ORDER BY created_at, challenge_id`

	var list []domain.ChallengeProgress
	if err := r.db.SelectContext(ctx, &list, query, userID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return list, nil
}

func (r *PostgresChallengeRepository) Get(ctx context.Context, userID, challengeID string) (*domain.ChallengeProgress, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenge_progress WHERE user_id = $1 AND challenge_id = $2`

	var p domain.ChallengeProgress
	if err := r.db.GetContext(ctx, &p, query, userID, challengeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChallengeNotJoined
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &p, nil
}

func (r *PostgresChallengeRepository) Create(ctx context.Context, p *domain.ChallengeProgress) error {
	query := `
        INSERT INTO challenge_progress (
            id, user_id, challenge_id, status, progress, last_logged_date, created_at, updated_at
        ) VALUES (
            :id, :user_id, :challenge_id, :status, :progress, :last_logged_date, :created_at, :updated_at
        )`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrChallengeAlreadyJoined
		case isForeignKeyViolation(err):
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert challenge progress: %w", err)
	}
	return nil
}

func (r *PostgresChallengeRepository) Update(ctx context.Context, p *domain.ChallengeProgress) error {
	query := `
        UPDATE challenge_progress SET
            status = :status, progress = :progress,
            last_logged_date = :last_logged_date, updated_at = :updated_at
        WHERE user_id = :user_id AND challenge_id = :challenge_id`

	res, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrChallengeNotJoined
	}
	return nil
}
