package progression

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"tti-backend/internal/catalog"
	"tti-backend/internal/models"
)

func testEngine(t *testing.T, moduleCount int) (*Engine, uuid.UUID) {
	t.Helper()

	courseID := uuid.New()
	modules := make([]models.Module, 0, moduleCount)
	for i := 1; i <= moduleCount; i++ {
		modules = append(modules, models.Module{
			ID:       uuid.New(),
			CourseID: courseID,
			Number:   i,
			Week:     i,
			Title:    "Module",
			Assessment: models.Assessment{
				PassingScore: 0.8,
				Questions: []models.Question{
					{Prompt: "1", Options: []string{"a", "b"}, CorrectIndex: 0},
					{Prompt: "2", Options: []string{"a", "b"}, CorrectIndex: 0},
					{Prompt: "3", Options: []string{"a", "b"}, CorrectIndex: 0},
					{Prompt: "4", Options: []string{"a", "b"}, CorrectIndex: 0},
					{Prompt: "5", Options: []string{"a", "b"}, CorrectIndex: 0},
				},
			},
		})
	}

	cat, err := catalog.New(modules)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return NewEngine(cat, NewMemStore()), courseID
}

var (
	passAnswers = []int{0, 0, 0, 0, 0}
	failAnswers = []int{1, 1, 1, 1, 1}
)

func TestInitialUnlockState(t *testing.T) {
	engine, courseID := testEngine(t, 3)
	userID := uuid.New()

	items, err := engine.ListModules(context.Background(), userID, courseID)
	if err != nil {
		t.Fatalf("ListModules() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d modules, want 3", len(items))
	}
	for _, item := range items {
		wantUnlocked := item.Number == 1
		if item.IsUnlocked != wantUnlocked {
			t.Errorf("module %d: IsUnlocked = %v, want %v", item.Number, item.IsUnlocked, wantUnlocked)
		}
		if item.IsCompleted || item.Attempts != 0 || item.BestScore != 0 {
			t.Errorf("module %d: fresh record should be zero, got %+v", item.Number, item)
		}
	}
}

func TestLockedModuleRejected(t *testing.T) {
	engine, courseID := testEngine(t, 3)
	userID := uuid.New()
	ctx := context.Background()

	if _, err := engine.GetModuleView(ctx, userID, courseID, 2); err == nil {
		t.Error("GetModuleView on locked module: expected error")
	} else if _, ok := err.(*LockedError); !ok {
		t.Errorf("GetModuleView on locked module: error = %T, want *LockedError", err)
	}

	if _, err := engine.GetQuizView(ctx, userID, courseID, 2); err == nil {
		t.Error("GetQuizView on locked module: expected error")
	}

	if _, err := engine.SubmitQuiz(ctx, userID, courseID, 2, passAnswers); err == nil {
		t.Error("SubmitQuiz on locked module: expected error")
	} else if _, ok := err.(*LockedError); !ok {
		t.Errorf("SubmitQuiz on locked module: error = %T, want *LockedError", err)
	}
}

func TestUnknownCourseAndModule(t *testing.T) {
	engine, courseID := testEngine(t, 2)
	userID := uuid.New()
	ctx := context.Background()

	if _, err := engine.GetModuleView(ctx, userID, uuid.New(), 1); err == nil {
		t.Error("unknown course: expected error")
	} else if _, ok := err.(*NotFoundError); !ok {
		t.Errorf("unknown course: error = %T, want *NotFoundError", err)
	}

	if _, err := engine.GetModuleView(ctx, userID, courseID, 99); err == nil {
		t.Error("unknown module number: expected error")
	} else if _, ok := err.(*NotFoundError); !ok {
		t.Errorf("unknown module number: error = %T, want *NotFoundError", err)
	}
}

func TestCanAccessModule(t *testing.T) {
	engine, courseID := testEngine(t, 3)
	userID := uuid.New()
	ctx := context.Background()

	ok, err := engine.CanAccessModule(ctx, userID, courseID, 1)
	if err != nil || !ok {
		t.Errorf("CanAccessModule(1) = %v, %v; want true, nil", ok, err)
	}

	ok, err = engine.CanAccessModule(ctx, userID, courseID, 2)
	if err != nil || ok {
		t.Errorf("CanAccessModule(2) = %v, %v; want false, nil", ok, err)
	}

	if _, err = engine.CanAccessModule(ctx, userID, courseID, 99); err == nil {
		t.Error("CanAccessModule(99) should error for unknown module")
	}
}

func TestPassUnlocksOnlyNextModule(t *testing.T) {
	engine, courseID := testEngine(t, 3)
	userID := uuid.New()
	ctx := context.Background()

	outcome, err := engine.SubmitQuiz(ctx, userID, courseID, 1, passAnswers)
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if !outcome.Result.Passed {
		t.Fatal("perfect submission should pass")
	}
	if !outcome.NextUnlocked {
		t.Error("first pass should report the next module as newly unlocked")
	}
	if !outcome.Progress.IsCompleted {
		t.Error("passed module should be completed")
	}

	items, err := engine.ListModules(ctx, userID, courseID)
	if err != nil {
		t.Fatalf("ListModules() error = %v", err)
	}
	if !items[1].IsUnlocked {
		t.Error("module 2 should unlock after passing module 1")
	}
	if items[2].IsUnlocked {
		t.Error("module 3 must stay locked after passing module 1")
	}
}

func TestFailDoesNotUnlock(t *testing.T) {
	engine, courseID := testEngine(t, 2)
	userID := uuid.New()
	ctx := context.Background()

	outcome, err := engine.SubmitQuiz(ctx, userID, courseID, 1, failAnswers)
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if outcome.Result.Passed {
		t.Fatal("all-wrong submission should fail")
	}
	if outcome.NextUnlocked {
		t.Error("failed attempt must not unlock anything")
	}
	if outcome.Progress.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", outcome.Progress.Attempts)
	}
	if outcome.Progress.IsCompleted {
		t.Error("failed module must not be completed")
	}

	items, _ := engine.ListModules(ctx, userID, courseID)
	if items[1].IsUnlocked {
		t.Error("module 2 must stay locked after a failed attempt")
	}
}

func TestMonotonicProgress(t *testing.T) {
	engine, courseID := testEngine(t, 2)
	userID := uuid.New()
	ctx := context.Background()

	// Pass, then fail the same module: completion and best score hold.
	if _, err := engine.SubmitQuiz(ctx, userID, courseID, 1, passAnswers); err != nil {
		t.Fatalf("first SubmitQuiz() error = %v", err)
	}
	outcome, err := engine.SubmitQuiz(ctx, userID, courseID, 1, failAnswers)
	if err != nil {
		t.Fatalf("second SubmitQuiz() error = %v", err)
	}

	if !outcome.Progress.IsCompleted {
		t.Error("completion must not revert after a failed retake")
	}
	if outcome.Progress.BestScore != 1.0 {
		t.Errorf("BestScore = %g, want 1.0 (never decreases)", outcome.Progress.BestScore)
	}
	if outcome.Progress.LastScore != 0.0 {
		t.Errorf("LastScore = %g, want 0.0", outcome.Progress.LastScore)
	}
	if outcome.Progress.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", outcome.Progress.Attempts)
	}

	items, _ := engine.ListModules(ctx, userID, courseID)
	if !items[1].IsUnlocked {
		t.Error("module 2 must stay unlocked after a failed retake of module 1")
	}
}

func TestRepassIsIdempotent(t *testing.T) {
	engine, courseID := testEngine(t, 2)
	userID := uuid.New()
	ctx := context.Background()

	if _, err := engine.SubmitQuiz(ctx, userID, courseID, 1, passAnswers); err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	outcome, err := engine.SubmitQuiz(ctx, userID, courseID, 1, passAnswers)
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if outcome.NextUnlocked {
		t.Error("re-passing must not report a fresh unlock")
	}
	if outcome.Progress.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", outcome.Progress.Attempts)
	}
}

func TestLastModulePassHasNoSuccessor(t *testing.T) {
	engine, courseID := testEngine(t, 1)
	userID := uuid.New()

	outcome, err := engine.SubmitQuiz(context.Background(), userID, courseID, 1, passAnswers)
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if !outcome.Result.Passed || !outcome.Progress.IsCompleted {
		t.Fatal("final module pass should complete it")
	}
	if outcome.NextUnlocked {
		t.Error("final module has nothing to unlock")
	}
}

func TestQuizViewMasksAnswers(t *testing.T) {
	engine, courseID := testEngine(t, 1)
	userID := uuid.New()

	view, err := engine.GetQuizView(context.Background(), userID, courseID, 1)
	if err != nil {
		t.Fatalf("GetQuizView() error = %v", err)
	}
	if len(view.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(view.Questions))
	}
	for i, q := range view.Questions {
		if q.Number != i+1 {
			t.Errorf("question %d: Number = %d", i, q.Number)
		}
		if len(q.Options) != 2 {
			t.Errorf("question %d: got %d options, want 2", i, len(q.Options))
		}
	}
	if view.PassingScore != 0.8 {
		t.Errorf("PassingScore = %g, want 0.8", view.PassingScore)
	}
}

func TestCourseSummary(t *testing.T) {
	engine, courseID := testEngine(t, 10)
	userID := uuid.New()
	ctx := context.Background()

	for n := 1; n <= 3; n++ {
		if _, err := engine.SubmitQuiz(ctx, userID, courseID, n, passAnswers); err != nil {
			t.Fatalf("SubmitQuiz(module %d) error = %v", n, err)
		}
	}

	summary, err := engine.GetSummary(ctx, userID, courseID)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if summary.TotalModules != 10 {
		t.Errorf("TotalModules = %d, want 10", summary.TotalModules)
	}
	if summary.CompletedModules != 3 {
		t.Errorf("CompletedModules = %d, want 3", summary.CompletedModules)
	}
	if summary.CurrentModule != 4 {
		t.Errorf("CurrentModule = %d, want 4", summary.CurrentModule)
	}
	if summary.OverallProgress != 30.0 {
		t.Errorf("OverallProgress = %g, want 30.0", summary.OverallProgress)
	}
}

func TestCourseSummaryComplete(t *testing.T) {
	engine, courseID := testEngine(t, 2)
	userID := uuid.New()
	ctx := context.Background()

	for n := 1; n <= 2; n++ {
		if _, err := engine.SubmitQuiz(ctx, userID, courseID, n, passAnswers); err != nil {
			t.Fatalf("SubmitQuiz(module %d) error = %v", n, err)
		}
	}

	summary, err := engine.GetSummary(ctx, userID, courseID)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if summary.CompletedModules != 2 || summary.OverallProgress != 100.0 {
		t.Errorf("summary = %+v, want fully complete", summary)
	}
	if summary.CurrentModule != 2 {
		t.Errorf("CurrentModule = %d, want 2 (last module once done)", summary.CurrentModule)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	engine, courseID := testEngine(t, 2)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	if _, err := engine.SubmitQuiz(ctx, alice, courseID, 1, passAnswers); err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}

	items, err := engine.ListModules(ctx, bob, courseID)
	if err != nil {
		t.Fatalf("ListModules() error = %v", err)
	}
	if items[1].IsUnlocked {
		t.Error("one user's pass must not unlock modules for another")
	}
}

func TestValidationDoesNotRecordAttempt(t *testing.T) {
	engine, courseID := testEngine(t, 1)
	userID := uuid.New()
	ctx := context.Background()

	if _, err := engine.SubmitQuiz(ctx, userID, courseID, 1, []int{0}); err == nil {
		t.Fatal("short answer slice should be rejected")
	} else if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("error = %T, want *ValidationError", err)
	}

	view, err := engine.GetQuizView(ctx, userID, courseID, 1)
	if err != nil {
		t.Fatalf("GetQuizView() error = %v", err)
	}
	if view.Attempts != 0 {
		t.Errorf("rejected submission must not count as an attempt, got %d", view.Attempts)
	}
}

func TestConcurrentSubmissions(t *testing.T) {
	engine, courseID := testEngine(t, 2)
	userID := uuid.New()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.SubmitQuiz(ctx, userID, courseID, 1, passAnswers)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: SubmitQuiz() error = %v", i, err)
		}
	}

	items, err := engine.ListModules(ctx, userID, courseID)
	if err != nil {
		t.Fatalf("ListModules() error = %v", err)
	}
	if items[0].Attempts != 2 {
		t.Errorf("Attempts = %d, want 2 (no lost updates)", items[0].Attempts)
	}
	if !items[0].IsCompleted || !items[1].IsUnlocked {
		t.Error("concurrent passes should leave module 1 complete and module 2 unlocked")
	}
}
