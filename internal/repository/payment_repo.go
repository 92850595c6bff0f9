package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tti-backend/internal/models"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
}

func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create records a checkout session at initiation time, status "initiated".
func (r *PaymentRepo) Create(ctx context.Context, t *models.PaymentTransaction) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO payment_transactions
			(id, session_id, user_id, user_email, course_id, amount, currency, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		t.ID, t.SessionID, t.UserID, t.UserEmail, t.CourseID, t.Amount, t.Currency, t.PaymentStatus,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (r *PaymentRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	t := &models.PaymentTransaction{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, session_id, user_id, user_email, course_id, amount, currency,
			payment_status, created_at, updated_at
		FROM payment_transactions WHERE session_id = $1`,
		sessionID,
	).Scan(&t.ID, &t.SessionID, &t.UserID, &t.UserEmail, &t.CourseID,
		&t.Amount, &t.Currency, &t.PaymentStatus, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateStatus transitions a transaction. A transaction already marked paid
// never moves backwards, so replayed webhooks are harmless.
func (r *PaymentRepo) UpdateStatus(ctx context.Context, sessionID, status string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE payment_transactions
		SET payment_status = $2, updated_at = NOW()
		WHERE session_id = $1 AND payment_status != 'paid'`,
		sessionID, status,
	)
	return err
}
