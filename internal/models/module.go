package models

import (
	"github.com/google/uuid"
)

// Module is one unit of curriculum: teaching content plus the assessment that
// gates the next module. Modules are immutable at runtime; they are defined in
// the catalog and validated once at startup.
type Module struct {
	ID         uuid.UUID     `json:"id"`
	CourseID   uuid.UUID     `json:"course_id"`
	Number     int           `json:"module_number"` // 1-based, contiguous per course
	Week       int           `json:"week"`
	Title      string        `json:"title"`
	Content    ModuleContent `json:"content"`
	Assessment Assessment    `json:"-"`
}

type ModuleContent struct {
	Objectives         []string   `json:"objectives"`
	ConceptExplanation string     `json:"concept_explanation"`
	InstructorScript   string     `json:"instructor_script"`
	StudentActivities  []string   `json:"student_activities"`
	Exercises          []Exercise `json:"exercises"`
	ExpectedOutcome    string     `json:"expected_outcome"`
}

type Exercise struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Instructions string `json:"instructions"`
	Duration     string `json:"duration"`
	Outcome      string `json:"outcome,omitempty"`
}

type Assessment struct {
	Questions    []Question `json:"questions"`
	PassingScore float64    `json:"passing_score"` // fraction in (0,1]
}

type Question struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

// QuizQuestionView is the pre-submission shape of a question: the correct
// index and explanation are stripped so clients can never see the answer key.
type QuizQuestionView struct {
	Number  int      `json:"question_number"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type QuizView struct {
	ModuleID     uuid.UUID          `json:"module_id"`
	ModuleNumber int                `json:"module_number"`
	Title        string             `json:"title"`
	PassingScore float64            `json:"passing_score"`
	Attempts     int                `json:"attempts"`
	BestScore    float64            `json:"best_score"`
	Questions    []QuizQuestionView `json:"questions"`
}

type ModuleView struct {
	Module   *Module         `json:"module"`
	Progress *ModuleProgress `json:"progress"`
}

// ModuleListItem is the course outline row: enough to render the syllabus
// with lock state, without shipping content for modules the user can't open.
type ModuleListItem struct {
	ID            uuid.UUID `json:"id"`
	Number        int       `json:"module_number"`
	Week          int       `json:"week"`
	Title         string    `json:"title"`
	IsUnlocked    bool      `json:"is_unlocked"`
	IsCompleted   bool      `json:"is_completed"`
	Attempts      int       `json:"attempts"`
	BestScore     float64   `json:"best_score"`
	QuestionCount int       `json:"question_count"`
}
