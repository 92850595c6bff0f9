package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tti-backend/internal/models"
)

type EnrollmentRepo struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepo(pool *pgxpool.Pool) *EnrollmentRepo {
	return &EnrollmentRepo{pool: pool}
}

// Create records a pending enrollment tied to a checkout session. Repeating
// checkout for the same course reuses the row and points it at the new
// session, so an abandoned payment can be retried.
func (r *EnrollmentRepo) Create(ctx context.Context, e *models.Enrollment) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO enrollments (id, user_id, course_id, payment_status, session_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, course_id) DO UPDATE SET
			session_id = EXCLUDED.session_id,
			payment_status = CASE
				WHEN enrollments.payment_status = 'paid' THEN enrollments.payment_status
				ELSE EXCLUDED.payment_status
			END
		RETURNING id, payment_status, enrolled_at`,
		e.ID, e.UserID, e.CourseID, e.PaymentStatus, e.SessionID,
	).Scan(&e.ID, &e.PaymentStatus, &e.EnrolledAt)
}

// MarkPaidBySession flips the enrollment for a checkout session to paid.
// Safe to call more than once; the webhook and the status poller can race.
func (r *EnrollmentRepo) MarkPaidBySession(ctx context.Context, sessionID string) (*models.Enrollment, error) {
	e := &models.Enrollment{}
	err := r.pool.QueryRow(ctx, `
		UPDATE enrollments SET payment_status = 'paid'
		WHERE session_id = $1
		RETURNING id, user_id, course_id, payment_status, session_id, enrolled_at`,
		sessionID,
	).Scan(&e.ID, &e.UserID, &e.CourseID, &e.PaymentStatus, &e.SessionID, &e.EnrolledAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EnrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*models.Enrollment, error) {
	e := &models.Enrollment{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, course_id, payment_status, session_id, enrolled_at
		FROM enrollments WHERE user_id = $1 AND course_id = $2`,
		userID, courseID,
	).Scan(&e.ID, &e.UserID, &e.CourseID, &e.PaymentStatus, &e.SessionID, &e.EnrolledAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// IsEnrolled reports whether the user holds a paid enrollment in the course.
// Pending enrollments do not grant access.
func (r *EnrollmentRepo) IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	var status string
	err := r.pool.QueryRow(ctx,
		`SELECT payment_status FROM enrollments WHERE user_id = $1 AND course_id = $2`,
		userID, courseID,
	).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return status == "paid", nil
}

// ListByUser returns the user's enrollments joined with course details.
func (r *EnrollmentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.EnrolledCourse, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.user_id, e.course_id, e.payment_status, e.session_id, e.enrolled_at,
			c.id, c.title, c.track, c.level, c.description, c.detailed_description,
			c.price, c.equipment_fee, c.duration, c.location, c.schedule, c.instructor,
			c.max_participants, c.features, c.is_coming_soon, c.created_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = $1
		ORDER BY e.enrolled_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*models.EnrolledCourse, 0)
	for rows.Next() {
		ec := &models.EnrolledCourse{
			Enrollment: &models.Enrollment{},
			Course:     &models.Course{},
		}
		err := rows.Scan(
			&ec.Enrollment.ID, &ec.Enrollment.UserID, &ec.Enrollment.CourseID,
			&ec.Enrollment.PaymentStatus, &ec.Enrollment.SessionID, &ec.Enrollment.EnrolledAt,
			&ec.Course.ID, &ec.Course.Title, &ec.Course.Track, &ec.Course.Level,
			&ec.Course.Description, &ec.Course.DetailedDescription,
			&ec.Course.Price, &ec.Course.EquipmentFee, &ec.Course.Duration,
			&ec.Course.Location, &ec.Course.Schedule, &ec.Course.Instructor,
			&ec.Course.MaxParticipants, &ec.Course.Features, &ec.Course.IsComingSoon,
			&ec.Course.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, ec)
	}
	return result, rows.Err()
}
