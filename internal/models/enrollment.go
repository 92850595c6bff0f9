package models

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	CourseID      uuid.UUID `json:"course_id"`
	PaymentStatus string    `json:"payment_status"` // "pending" | "paid" | "expired"
	SessionID     *string   `json:"session_id"`
	EnrolledAt    time.Time `json:"enrolled_at"`
}

// EnrolledCourse pairs an enrollment with its course for the dashboard list.
type EnrolledCourse struct {
	Enrollment *Enrollment `json:"enrollment"`
	Course     *Course     `json:"course"`
}

type PaymentTransaction struct {
	ID            uuid.UUID `json:"id"`
	SessionID     string    `json:"session_id"`
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	CourseID      uuid.UUID `json:"course_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentStatus string    `json:"payment_status"` // "initiated" | "paid" | "expired"
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
