package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tti-backend/internal/models"
)

type CourseRepo struct {
	pool *pgxpool.Pool
}

func NewCourseRepo(pool *pgxpool.Pool) *CourseRepo {
	return &CourseRepo{pool: pool}
}

const courseColumns = `id, title, track, level, description, detailed_description,
	price, equipment_fee, duration, location, schedule, instructor,
	max_participants, features, is_coming_soon, created_at`

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(
		&c.ID, &c.Title, &c.Track, &c.Level, &c.Description, &c.DetailedDescription,
		&c.Price, &c.EquipmentFee, &c.Duration, &c.Location, &c.Schedule, &c.Instructor,
		&c.MaxParticipants, &c.Features, &c.IsComingSoon, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns courses, optionally filtered by track ("wellness" or
// "clinical"). An empty track returns everything.
func (r *CourseRepo) List(ctx context.Context, track string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	args := []any{}
	if track != "" {
		query += ` WHERE track = $1`
		args = append(args, track)
	}
	query += ` ORDER BY created_at, title`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *CourseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	return scanCourse(r.pool.QueryRow(ctx, query, id))
}

// Upsert inserts a course or refreshes its fields if the ID already exists.
// The seed endpoint uses this so re-seeding is safe.
func (r *CourseRepo) Upsert(ctx context.Context, c *models.Course) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO courses (id, title, track, level, description, detailed_description,
			price, equipment_fee, duration, location, schedule, instructor,
			max_participants, features, is_coming_soon)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			track = EXCLUDED.track,
			level = EXCLUDED.level,
			description = EXCLUDED.description,
			detailed_description = EXCLUDED.detailed_description,
			price = EXCLUDED.price,
			equipment_fee = EXCLUDED.equipment_fee,
			duration = EXCLUDED.duration,
			location = EXCLUDED.location,
			schedule = EXCLUDED.schedule,
			instructor = EXCLUDED.instructor,
			max_participants = EXCLUDED.max_participants,
			features = EXCLUDED.features,
			is_coming_soon = EXCLUDED.is_coming_soon`,
		c.ID, c.Title, c.Track, c.Level, c.Description, c.DetailedDescription,
		c.Price, c.EquipmentFee, c.Duration, c.Location, c.Schedule, c.Instructor,
		c.MaxParticipants, c.Features, c.IsComingSoon,
	)
	return err
}
