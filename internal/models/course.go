package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Track               string    `json:"track"` // "wellness" | "clinical"
	Level               string    `json:"level"` // "prerequisite" | "level1" | "level2" | "advanced"
	Description         string    `json:"description"`
	DetailedDescription string    `json:"detailed_description"`
	Price               float64   `json:"price"`
	EquipmentFee        float64   `json:"equipment_fee"`
	Duration            string    `json:"duration"`
	Location            string    `json:"location"`
	Schedule            string    `json:"schedule"`
	Instructor          string    `json:"instructor"`
	MaxParticipants     int       `json:"max_participants"`
	Features            []string  `json:"features"`
	IsComingSoon        bool      `json:"is_coming_soon"`
	CreatedAt           time.Time `json:"created_at"`
}

type CreateCourseRequest struct {
	Title               string   `json:"title"`
	Track               string   `json:"track"`
	Level               string   `json:"level"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailed_description"`
	Price               float64  `json:"price"`
	EquipmentFee        float64  `json:"equipment_fee"`
	Duration            string   `json:"duration"`
	Location            string   `json:"location"`
	Schedule            string   `json:"schedule"`
	Instructor          string   `json:"instructor"`
	MaxParticipants     int      `json:"max_participants"`
	Features            []string `json:"features"`
	IsComingSoon        bool     `json:"is_coming_soon"`
}

type CheckoutRequest struct {
	CourseID  uuid.UUID `json:"course_id"`
	OriginURL string    `json:"origin_url"`
}
