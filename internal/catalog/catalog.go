package catalog

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"tti-backend/internal/models"
)

// IntegrityError means the curriculum definitions are malformed. It is fatal:
// main must refuse to start rather than let a bad catalog reach grading.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string { return e.Message }

// Catalog is the immutable, validated curriculum index. It is built once at
// startup and safe for concurrent reads; nothing mutates it afterwards.
type Catalog struct {
	byCourse map[uuid.UUID][]models.Module
}

func New(modules []models.Module) (*Catalog, error) {
	byCourse := make(map[uuid.UUID][]models.Module)
	for _, m := range modules {
		byCourse[m.CourseID] = append(byCourse[m.CourseID], m)
	}

	for courseID, list := range byCourse {
		sort.Slice(list, func(i, j int) bool { return list[i].Number < list[j].Number })

		for i, m := range list {
			if m.Number != i+1 {
				return nil, &IntegrityError{Message: fmt.Sprintf(
					"course %s: module numbers must be contiguous from 1, got %d at position %d", courseID, m.Number, i+1)}
			}
			if err := validateModule(m); err != nil {
				return nil, err
			}
		}
		byCourse[courseID] = list
	}

	return &Catalog{byCourse: byCourse}, nil
}

func validateModule(m models.Module) error {
	if m.Assessment.PassingScore <= 0 || m.Assessment.PassingScore > 1 {
		return &IntegrityError{Message: fmt.Sprintf(
			"module %d (%s): passing score must be in (0,1], got %g", m.Number, m.Title, m.Assessment.PassingScore)}
	}
	if len(m.Assessment.Questions) == 0 {
		return &IntegrityError{Message: fmt.Sprintf("module %d (%s): assessment has no questions", m.Number, m.Title)}
	}
	for i, q := range m.Assessment.Questions {
		if len(q.Options) < 2 {
			return &IntegrityError{Message: fmt.Sprintf(
				"module %d question %d: needs at least 2 options, got %d", m.Number, i+1, len(q.Options))}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return &IntegrityError{Message: fmt.Sprintf(
				"module %d question %d: correct_index %d out of range for %d options", m.Number, i+1, q.CorrectIndex, len(q.Options))}
		}
	}
	return nil
}

// HasCourse reports whether any modules are defined for the course.
func (c *Catalog) HasCourse(courseID uuid.UUID) bool {
	_, ok := c.byCourse[courseID]
	return ok
}

// ListModules returns the course's modules in module-number order.
func (c *Catalog) ListModules(courseID uuid.UUID) ([]models.Module, bool) {
	list, ok := c.byCourse[courseID]
	return list, ok
}

// GetModule looks up a module by its 1-based number.
func (c *Catalog) GetModule(courseID uuid.UUID, number int) (models.Module, bool) {
	list, ok := c.byCourse[courseID]
	if !ok || number < 1 || number > len(list) {
		return models.Module{}, false
	}
	return list[number-1], true
}

// ModuleCount returns how many modules a course has (0 if unknown).
func (c *Catalog) ModuleCount(courseID uuid.UUID) int {
	return len(c.byCourse[courseID])
}
