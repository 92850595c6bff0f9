package catalog

import (
	"testing"

	"github.com/google/uuid"

	"tti-backend/internal/models"
)

func validModule(courseID uuid.UUID, number int) models.Module {
	return models.Module{
		ID:       uuid.New(),
		CourseID: courseID,
		Number:   number,
		Week:     number,
		Title:    "Module",
		Assessment: models.Assessment{
			PassingScore: 0.8,
			Questions: []models.Question{
				{Prompt: "Q", Options: []string{"a", "b"}, CorrectIndex: 0},
			},
		},
	}
}

func TestNewValidCatalog(t *testing.T) {
	courseID := uuid.New()
	cat, err := New([]models.Module{
		validModule(courseID, 2),
		validModule(courseID, 1),
		validModule(courseID, 3),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !cat.HasCourse(courseID) {
		t.Error("HasCourse() = false for seeded course")
	}
	if cat.ModuleCount(courseID) != 3 {
		t.Errorf("ModuleCount() = %d, want 3", cat.ModuleCount(courseID))
	}

	// Out-of-order input must come back sorted by number.
	list, ok := cat.ListModules(courseID)
	if !ok {
		t.Fatal("ListModules() ok = false")
	}
	for i, m := range list {
		if m.Number != i+1 {
			t.Errorf("position %d: Number = %d", i, m.Number)
		}
	}

	m, ok := cat.GetModule(courseID, 2)
	if !ok || m.Number != 2 {
		t.Errorf("GetModule(2) = %+v, %v", m, ok)
	}
	if _, ok := cat.GetModule(courseID, 0); ok {
		t.Error("GetModule(0) should not resolve")
	}
	if _, ok := cat.GetModule(courseID, 4); ok {
		t.Error("GetModule(4) should not resolve")
	}
	if _, ok := cat.GetModule(uuid.New(), 1); ok {
		t.Error("GetModule on unknown course should not resolve")
	}
}

func TestNewRejectsMalformedCurricula(t *testing.T) {
	courseID := uuid.New()

	tests := []struct {
		name    string
		mutate  func(*models.Module)
		modules func() []models.Module
	}{
		{
			name: "gap in module numbers",
			modules: func() []models.Module {
				return []models.Module{validModule(courseID, 1), validModule(courseID, 3)}
			},
		},
		{
			name: "numbers start at 2",
			modules: func() []models.Module {
				return []models.Module{validModule(courseID, 2)}
			},
		},
		{
			name: "duplicate module number",
			modules: func() []models.Module {
				return []models.Module{validModule(courseID, 1), validModule(courseID, 1)}
			},
		},
		{
			name:   "passing score zero",
			mutate: func(m *models.Module) { m.Assessment.PassingScore = 0 },
		},
		{
			name:   "passing score above one",
			mutate: func(m *models.Module) { m.Assessment.PassingScore = 1.5 },
		},
		{
			name:   "no questions",
			mutate: func(m *models.Module) { m.Assessment.Questions = nil },
		},
		{
			name:   "single option",
			mutate: func(m *models.Module) { m.Assessment.Questions[0].Options = []string{"only"} },
		},
		{
			name:   "correct index out of range",
			mutate: func(m *models.Module) { m.Assessment.Questions[0].CorrectIndex = 5 },
		},
		{
			name:   "negative correct index",
			mutate: func(m *models.Module) { m.Assessment.Questions[0].CorrectIndex = -1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var modules []models.Module
			if tt.modules != nil {
				modules = tt.modules()
			} else {
				m := validModule(courseID, 1)
				tt.mutate(&m)
				modules = []models.Module{m}
			}

			_, err := New(modules)
			if err == nil {
				t.Fatal("New() should reject malformed curriculum")
			}
			if _, ok := err.(*IntegrityError); !ok {
				t.Errorf("error = %T, want *IntegrityError", err)
			}
		})
	}
}

func TestFoundationalCurriculumValidates(t *testing.T) {
	cat, err := New(FoundationalModules())
	if err != nil {
		t.Fatalf("seed curriculum failed validation: %v", err)
	}
	if cat.ModuleCount(FoundationalCourseID) != 6 {
		t.Errorf("ModuleCount = %d, want 6", cat.ModuleCount(FoundationalCourseID))
	}
}

func TestFoundationalModuleOneAnswerKey(t *testing.T) {
	cat, err := New(FoundationalModules())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	m, ok := cat.GetModule(FoundationalCourseID, 1)
	if !ok {
		t.Fatal("module 1 missing")
	}
	want := []int{1, 3, 1, 1, 1}
	if len(m.Assessment.Questions) != len(want) {
		t.Fatalf("module 1 has %d questions, want %d", len(m.Assessment.Questions), len(want))
	}
	for i, q := range m.Assessment.Questions {
		if q.CorrectIndex != want[i] {
			t.Errorf("question %d: CorrectIndex = %d, want %d", i+1, q.CorrectIndex, want[i])
		}
	}
	if m.Assessment.PassingScore != 0.8 {
		t.Errorf("PassingScore = %g, want 0.8", m.Assessment.PassingScore)
	}
}

func TestSeedCoursesIncludeFoundational(t *testing.T) {
	courses := SeedCourses()
	if len(courses) != 8 {
		t.Fatalf("got %d seed courses, want 8", len(courses))
	}

	var found bool
	for _, c := range courses {
		if c.ID == FoundationalCourseID {
			found = true
			if c.IsComingSoon {
				t.Error("foundational course must be open for enrollment")
			}
		}
	}
	if !found {
		t.Error("foundational course missing from seed catalog")
	}
}
