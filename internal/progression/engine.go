package progression

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tti-backend/internal/catalog"
	"tti-backend/internal/models"
)

// Engine enforces sequential module access over the catalog and a progress
// store: content and quizzes are only served for unlocked modules, and passing
// a quiz is the only way to unlock the next one.
type Engine struct {
	catalog *catalog.Catalog
	store   Store
}

func NewEngine(cat *catalog.Catalog, store Store) *Engine {
	return &Engine{catalog: cat, store: store}
}

// SubmitOutcome bundles what a submission produced: the graded result, the
// module's updated progress row, and whether this attempt unlocked the next
// module for the first time.
type SubmitOutcome struct {
	Result       *models.QuizResult
	Progress     *models.ModuleProgress
	NextUnlocked bool
}

// CanAccessModule reports whether the module is unlocked for the user without
// touching its content. Unknown courses and module numbers are errors; a
// locked module is simply false.
func (e *Engine) CanAccessModule(ctx context.Context, userID, courseID uuid.UUID, number int) (bool, error) {
	_, _, err := e.unlockedModule(ctx, userID, courseID, number)
	if err != nil {
		var locked *LockedError
		if errors.As(err, &locked) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListModules returns the course outline with per-module lock state. Locked
// modules still appear; only their content stays hidden.
func (e *Engine) ListModules(ctx context.Context, userID, courseID uuid.UUID) ([]models.ModuleListItem, error) {
	modules, ok := e.catalog.ListModules(courseID)
	if !ok {
		return nil, &NotFoundError{Message: "course has no curriculum"}
	}

	items := make([]models.ModuleListItem, 0, len(modules))
	for _, m := range modules {
		progress, err := e.store.GetOrCreate(ctx, userID, courseID, m.Number)
		if err != nil {
			return nil, err
		}
		items = append(items, models.ModuleListItem{
			ID:            m.ID,
			Number:        m.Number,
			Week:          m.Week,
			Title:         m.Title,
			IsUnlocked:    progress.IsUnlocked,
			IsCompleted:   progress.IsCompleted,
			Attempts:      progress.Attempts,
			BestScore:     progress.BestScore,
			QuestionCount: len(m.Assessment.Questions),
		})
	}
	return items, nil
}

// GetModuleView returns a module's full content. Locked modules yield
// LockedError regardless of whether the caller knows they exist.
func (e *Engine) GetModuleView(ctx context.Context, userID, courseID uuid.UUID, number int) (*models.ModuleView, error) {
	module, progress, err := e.unlockedModule(ctx, userID, courseID, number)
	if err != nil {
		return nil, err
	}
	return &models.ModuleView{Module: module, Progress: progress}, nil
}

// GetQuizView returns the module's quiz with correct answers and explanations
// stripped.
func (e *Engine) GetQuizView(ctx context.Context, userID, courseID uuid.UUID, number int) (*models.QuizView, error) {
	module, progress, err := e.unlockedModule(ctx, userID, courseID, number)
	if err != nil {
		return nil, err
	}

	questions := make([]models.QuizQuestionView, 0, len(module.Assessment.Questions))
	for i, q := range module.Assessment.Questions {
		questions = append(questions, models.QuizQuestionView{
			Number:  i + 1,
			Prompt:  q.Prompt,
			Options: q.Options,
		})
	}

	return &models.QuizView{
		ModuleID:     module.ID,
		ModuleNumber: module.Number,
		Title:        module.Title,
		PassingScore: module.Assessment.PassingScore,
		Attempts:     progress.Attempts,
		BestScore:    progress.BestScore,
		Questions:    questions,
	}, nil
}

// SubmitQuiz grades an attempt against an unlocked module and records it.
// Passing marks the module completed and unlocks the successor atomically;
// failing records the attempt and changes nothing else.
func (e *Engine) SubmitQuiz(ctx context.Context, userID, courseID uuid.UUID, number int, answers []int) (*SubmitOutcome, error) {
	module, progress, err := e.unlockedModule(ctx, userID, courseID, number)
	if err != nil {
		return nil, err
	}
	wasCompleted := progress.IsCompleted

	result, err := Grade(module.Assessment, answers)
	if err != nil {
		return nil, err
	}

	hasNext := number < e.catalog.ModuleCount(courseID)
	updated, err := e.store.RecordAttempt(ctx, userID, courseID, number, result, hasNext)
	if err != nil {
		return nil, err
	}

	return &SubmitOutcome{
		Result:       result,
		Progress:     updated,
		NextUnlocked: result.Passed && !wasCompleted && hasNext,
	}, nil
}

// GetSummary rolls the per-module rows up into a course-level view. The
// current module is the lowest incomplete one, or the last module once the
// whole course is done.
func (e *Engine) GetSummary(ctx context.Context, userID, courseID uuid.UUID) (*models.CourseProgressSummary, error) {
	modules, ok := e.catalog.ListModules(courseID)
	if !ok {
		return nil, &NotFoundError{Message: "course has no curriculum"}
	}

	summary := &models.CourseProgressSummary{
		TotalModules:  len(modules),
		CurrentModule: len(modules),
	}
	currentSet := false
	for _, m := range modules {
		progress, err := e.store.GetOrCreate(ctx, userID, courseID, m.Number)
		if err != nil {
			return nil, err
		}
		if progress.IsCompleted {
			summary.CompletedModules++
		} else if !currentSet {
			summary.CurrentModule = m.Number
			currentSet = true
		}
	}
	summary.OverallProgress = float64(summary.CompletedModules) / float64(len(modules)) * 100

	return summary, nil
}

// unlockedModule resolves the module and its progress row, rejecting unknown
// and locked modules. Every content, quiz, and submission path goes through
// this gate.
func (e *Engine) unlockedModule(ctx context.Context, userID, courseID uuid.UUID, number int) (*models.Module, *models.ModuleProgress, error) {
	module, ok := e.catalog.GetModule(courseID, number)
	if !ok {
		if !e.catalog.HasCourse(courseID) {
			return nil, nil, &NotFoundError{Message: "course has no curriculum"}
		}
		return nil, nil, &NotFoundError{Message: fmt.Sprintf("module %d not found", number)}
	}

	progress, err := e.store.GetOrCreate(ctx, userID, courseID, number)
	if err != nil {
		return nil, nil, err
	}
	if !progress.IsUnlocked {
		return nil, nil, &LockedError{Message: fmt.Sprintf(
			"module %d is locked; complete module %d first", number, number-1)}
	}

	return &module, progress, nil
}
