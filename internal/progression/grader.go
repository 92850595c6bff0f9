package progression

import (
	"fmt"

	"tti-backend/internal/models"
)

// Grade scores a submission against an assessment. It is pure: no state, no
// side effects, identical input always yields identical output.
//
// Each answer is the selected option index for the question at the same
// position; -1 (or any out-of-range index) counts as unanswered and scores
// incorrect. The answer slice must be exactly one entry per question.
func Grade(assessment models.Assessment, answers []int) (*models.QuizResult, error) {
	total := len(assessment.Questions)
	if len(answers) != total {
		return nil, &ValidationError{Message: fmt.Sprintf(
			"expected %d answers, got %d", total, len(answers))}
	}

	result := &models.QuizResult{
		TotalQuestions: total,
		Review:         make([]models.QuestionReview, 0, total),
	}

	for i, q := range assessment.Questions {
		selected := answers[i]
		answered := selected >= 0 && selected < len(q.Options)
		correct := selected == q.CorrectIndex

		review := models.QuestionReview{
			QuestionNumber: i + 1,
			Prompt:         q.Prompt,
			CorrectOption:  q.Options[q.CorrectIndex],
			IsCorrect:      correct,
			Explanation:    q.Explanation,
		}
		if answered {
			review.SelectedOption = q.Options[selected]
		}

		if correct {
			result.CorrectCount++
		}
		result.Review = append(result.Review, review)
	}

	// Score stays an unrounded fraction; rounding is a presentation concern.
	result.Score = float64(result.CorrectCount) / float64(total)
	result.Passed = result.Score >= assessment.PassingScore

	return result, nil
}
