package models

import (
	"time"

	"github.com/google/uuid"
)

// ModuleProgress is the per-(user, course, module) progression record.
// Invariants enforced by the store: is_unlocked and is_completed are monotonic
// (never revert to false), attempts and best_score never decrease, and
// is_completed implies best_score reached the module's passing score.
type ModuleProgress struct {
	UserID          uuid.UUID  `json:"user_id"`
	CourseID        uuid.UUID  `json:"course_id"`
	ModuleNumber    int        `json:"module_number"`
	IsUnlocked      bool       `json:"is_unlocked"`
	IsCompleted     bool       `json:"is_completed"`
	Attempts        int        `json:"attempts"`
	BestScore       float64    `json:"best_score"`
	LastScore       float64    `json:"last_score"`
	FirstUnlockedAt *time.Time `json:"first_unlocked_at"`
	LastAttemptAt   *time.Time `json:"last_attempt_at"`
}

type QuizSubmission struct {
	ModuleID uuid.UUID `json:"module_id"`
	Answers  []int     `json:"answers"` // one selected option index per question; -1 = unanswered
}

type QuestionReview struct {
	QuestionNumber int    `json:"question_number"`
	Prompt         string `json:"prompt"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation,omitempty"`
}

type QuizResult struct {
	Score          float64          `json:"score"`
	CorrectCount   int              `json:"correct_answers"`
	TotalQuestions int              `json:"total_questions"`
	Passed         bool             `json:"passed"`
	Review         []QuestionReview `json:"review"`
}

type CourseProgressSummary struct {
	TotalModules     int     `json:"total_modules"`
	CompletedModules int     `json:"completed_modules"`
	CurrentModule    int     `json:"current_module"`
	OverallProgress  float64 `json:"overall_progress"` // percentage
}
