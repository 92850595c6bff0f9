package models

import (
	"github.com/google/uuid"
)

// NotificationJob is the unit of work pushed to queue:notifications and
// consumed by the worker pool off the request path.
type NotificationJob struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Type         string    `json:"type"` // "enrollment-paid" | "quiz-passed"
	CourseID     uuid.UUID `json:"course_id"`
	ModuleNumber int       `json:"module_number,omitempty"`
	NextUnlocked int       `json:"next_unlocked,omitempty"` // 0 when the passed module was the last one
}

// WebSocket message types
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type ModuleEvent struct {
	CourseID     uuid.UUID `json:"course_id"`
	ModuleNumber int       `json:"module_number"`
}

type EnrollmentEvent struct {
	CourseID    uuid.UUID `json:"course_id"`
	CourseTitle string    `json:"course_title"`
}

// API Error response
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
