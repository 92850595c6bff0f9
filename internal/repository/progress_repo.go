package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tti-backend/internal/models"
	"tti-backend/internal/progression"
)

// ProgressRepo is the Postgres-backed progression.Store. Rows are keyed
// (user_id, course_id, module_number); attempts and the follow-on unlock run
// in one transaction with the current and next rows locked FOR UPDATE.
type ProgressRepo struct {
	pool *pgxpool.Pool
}

func NewProgressRepo(pool *pgxpool.Pool) *ProgressRepo {
	return &ProgressRepo{pool: pool}
}

const txRetries = 3

// retryable matches serialization_failure and deadlock_detected. Those roll
// the whole transaction back and rerun it; the caller never sees them.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.SQLState() == "40001" || pgErr.SQLState() == "40P01"
}

func (r *ProgressRepo) GetOrCreate(ctx context.Context, userID, courseID uuid.UUID, moduleNumber int) (*models.ModuleProgress, error) {
	row, err := r.selectRow(ctx, userID, courseID, moduleNumber)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, &progression.UnavailableError{Err: err}
	}

	unlocked, err := r.shouldStartUnlocked(ctx, userID, courseID, moduleNumber)
	if err != nil {
		return nil, &progression.UnavailableError{Err: err}
	}

	// DO NOTHING keeps a concurrent creator's row; the re-select below
	// converges both callers on whichever insert won.
	_, err = r.pool.Exec(ctx, `
		INSERT INTO module_progress
			(user_id, course_id, module_number, is_unlocked, first_unlocked_at)
		VALUES ($1, $2, $3, $4, CASE WHEN $4 THEN NOW() END)
		ON CONFLICT (user_id, course_id, module_number) DO NOTHING`,
		userID, courseID, moduleNumber, unlocked,
	)
	if err != nil {
		return nil, &progression.UnavailableError{Err: err}
	}

	row, err = r.selectRow(ctx, userID, courseID, moduleNumber)
	if err != nil {
		return nil, &progression.UnavailableError{Err: err}
	}
	return row, nil
}

func (r *ProgressRepo) RecordAttempt(ctx context.Context, userID, courseID uuid.UUID, moduleNumber int, result *models.QuizResult, hasNext bool) (*models.ModuleProgress, error) {
	var row *models.ModuleProgress
	var err error

	for attempt := 0; attempt < txRetries; attempt++ {
		row, err = r.recordAttemptTx(ctx, userID, courseID, moduleNumber, result, hasNext)
		if err == nil || !retryable(err) {
			break
		}
		time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
	}
	if err != nil {
		var locked *progression.LockedError
		if errors.As(err, &locked) {
			return nil, locked
		}
		return nil, &progression.UnavailableError{Err: err}
	}
	return row, nil
}

func (r *ProgressRepo) recordAttemptTx(ctx context.Context, userID, courseID uuid.UUID, moduleNumber int, result *models.QuizResult, hasNext bool) (*models.ModuleProgress, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Ensure the row exists before locking it; a submission can be the
	// first touch of a module.
	_, err = tx.Exec(ctx, `
		INSERT INTO module_progress
			(user_id, course_id, module_number, is_unlocked, first_unlocked_at)
		VALUES ($1, $2, $3, $3 = 1, CASE WHEN $3 = 1 THEN NOW() END)
		ON CONFLICT (user_id, course_id, module_number) DO NOTHING`,
		userID, courseID, moduleNumber,
	)
	if err != nil {
		return nil, err
	}

	var unlocked bool
	err = tx.QueryRow(ctx, `
		SELECT is_unlocked FROM module_progress
		WHERE user_id = $1 AND course_id = $2 AND module_number = $3
		FOR UPDATE`,
		userID, courseID, moduleNumber,
	).Scan(&unlocked)
	if err != nil {
		return nil, err
	}
	if !unlocked {
		return nil, &progression.LockedError{Message: "module is locked"}
	}

	row := &models.ModuleProgress{}
	err = tx.QueryRow(ctx, `
		UPDATE module_progress SET
			attempts = attempts + 1,
			last_score = $4,
			best_score = GREATEST(best_score, $4),
			is_completed = is_completed OR $5,
			last_attempt_at = NOW()
		WHERE user_id = $1 AND course_id = $2 AND module_number = $3
		RETURNING user_id, course_id, module_number, is_unlocked, is_completed,
			attempts, best_score, last_score, first_unlocked_at, last_attempt_at`,
		userID, courseID, moduleNumber, result.Score, result.Passed,
	).Scan(&row.UserID, &row.CourseID, &row.ModuleNumber, &row.IsUnlocked, &row.IsCompleted,
		&row.Attempts, &row.BestScore, &row.LastScore, &row.FirstUnlockedAt, &row.LastAttemptAt)
	if err != nil {
		return nil, err
	}

	if result.Passed && hasNext {
		_, err = tx.Exec(ctx, `
			INSERT INTO module_progress
				(user_id, course_id, module_number, is_unlocked, first_unlocked_at)
			VALUES ($1, $2, $3, TRUE, NOW())
			ON CONFLICT (user_id, course_id, module_number) DO UPDATE SET
				is_unlocked = TRUE,
				first_unlocked_at = COALESCE(module_progress.first_unlocked_at, NOW())`,
			userID, courseID, moduleNumber+1,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return row, nil
}

func (r *ProgressRepo) selectRow(ctx context.Context, userID, courseID uuid.UUID, moduleNumber int) (*models.ModuleProgress, error) {
	row := &models.ModuleProgress{}
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, course_id, module_number, is_unlocked, is_completed,
			attempts, best_score, last_score, first_unlocked_at, last_attempt_at
		FROM module_progress
		WHERE user_id = $1 AND course_id = $2 AND module_number = $3`,
		userID, courseID, moduleNumber,
	).Scan(&row.UserID, &row.CourseID, &row.ModuleNumber, &row.IsUnlocked, &row.IsCompleted,
		&row.Attempts, &row.BestScore, &row.LastScore, &row.FirstUnlockedAt, &row.LastAttemptAt)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// shouldStartUnlocked: module 1 is always open; anything else opens only if
// its predecessor is already completed (covers rows created lazily after the
// unlock would have happened).
func (r *ProgressRepo) shouldStartUnlocked(ctx context.Context, userID, courseID uuid.UUID, moduleNumber int) (bool, error) {
	if moduleNumber == 1 {
		return true, nil
	}
	var prevCompleted bool
	err := r.pool.QueryRow(ctx, `
		SELECT is_completed FROM module_progress
		WHERE user_id = $1 AND course_id = $2 AND module_number = $3`,
		userID, courseID, moduleNumber-1,
	).Scan(&prevCompleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return prevCompleted, nil
}
