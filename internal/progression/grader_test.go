package progression

import (
	"testing"

	"tti-backend/internal/models"
)

func twoQuestionAssessment() models.Assessment {
	return models.Assessment{
		PassingScore: 0.8,
		Questions: []models.Question{
			{Prompt: "Q1", Options: []string{"a", "b", "c"}, CorrectIndex: 1, Explanation: "because b"},
			{Prompt: "Q2", Options: []string{"x", "y"}, CorrectIndex: 0},
		},
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		name        string
		answers     []int
		wantScore   float64
		wantCorrect int
		wantPassed  bool
	}{
		{"all correct", []int{1, 0}, 1.0, 2, true},
		{"half correct", []int{0, 0}, 0.5, 1, false},
		{"all wrong", []int{0, 1}, 0.0, 0, false},
		{"unanswered counts wrong", []int{-1, 0}, 0.5, 1, false},
		{"out of range counts wrong", []int{99, 0}, 0.5, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Grade(twoQuestionAssessment(), tt.answers)
			if err != nil {
				t.Fatalf("Grade() error = %v", err)
			}
			if result.Score != tt.wantScore {
				t.Errorf("Score = %g, want %g", result.Score, tt.wantScore)
			}
			if result.CorrectCount != tt.wantCorrect {
				t.Errorf("CorrectCount = %d, want %d", result.CorrectCount, tt.wantCorrect)
			}
			if result.TotalQuestions != 2 {
				t.Errorf("TotalQuestions = %d, want 2", result.TotalQuestions)
			}
			if result.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v", result.Passed, tt.wantPassed)
			}
		})
	}
}

func TestGradeAnswerCountMismatch(t *testing.T) {
	for _, answers := range [][]int{{}, {1}, {1, 0, 1}} {
		_, err := Grade(twoQuestionAssessment(), answers)
		if err == nil {
			t.Fatalf("Grade() with %d answers: expected error, got nil", len(answers))
		}
		if _, ok := err.(*ValidationError); !ok {
			t.Errorf("Grade() with %d answers: error = %T, want *ValidationError", len(answers), err)
		}
	}
}

func TestGradeExactPassingBoundary(t *testing.T) {
	// 4 of 5 correct is exactly 0.8; the threshold is inclusive.
	assessment := models.Assessment{
		PassingScore: 0.8,
		Questions: []models.Question{
			{Prompt: "1", Options: []string{"a", "b"}, CorrectIndex: 0},
			{Prompt: "2", Options: []string{"a", "b"}, CorrectIndex: 0},
			{Prompt: "3", Options: []string{"a", "b"}, CorrectIndex: 0},
			{Prompt: "4", Options: []string{"a", "b"}, CorrectIndex: 0},
			{Prompt: "5", Options: []string{"a", "b"}, CorrectIndex: 0},
		},
	}

	result, err := Grade(assessment, []int{0, 0, 0, 0, 1})
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if !result.Passed {
		t.Errorf("score %g at threshold 0.8 should pass", result.Score)
	}

	result, err = Grade(assessment, []int{0, 0, 0, 1, 1})
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if result.Passed {
		t.Errorf("score %g below threshold 0.8 should not pass", result.Score)
	}
}

func TestGradeReview(t *testing.T) {
	result, err := Grade(twoQuestionAssessment(), []int{2, -1})
	if err != nil {
		t.Fatalf("Grade() error = %v", err)
	}
	if len(result.Review) != 2 {
		t.Fatalf("Review length = %d, want 2", len(result.Review))
	}

	first := result.Review[0]
	if first.SelectedOption != "c" || first.CorrectOption != "b" || first.IsCorrect {
		t.Errorf("review[0] = %+v, want selected=c correct=b incorrect", first)
	}
	if first.Explanation != "because b" {
		t.Errorf("review[0].Explanation = %q", first.Explanation)
	}

	second := result.Review[1]
	if second.SelectedOption != "" {
		t.Errorf("unanswered question should have empty SelectedOption, got %q", second.SelectedOption)
	}
}

func TestGradeIsDeterministic(t *testing.T) {
	a, _ := Grade(twoQuestionAssessment(), []int{1, 1})
	b, _ := Grade(twoQuestionAssessment(), []int{1, 1})
	if a.Score != b.Score || a.CorrectCount != b.CorrectCount || a.Passed != b.Passed {
		t.Errorf("identical input produced different results: %+v vs %+v", a, b)
	}
}
