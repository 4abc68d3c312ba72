package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

// QuizQuestionCount is the length of the program-match quiz. Question i
// (1-based) scores into category (i-1) mod 5 over the declared category
// order, so every category receives exactly four questions.
const QuizQuestionCount = 20

// QuizValidationError reports unanswered or out-of-range questions. Scoring
// never runs and nothing is persisted when it is returned.
type QuizValidationError struct {
	Missing []string
}

func (e *QuizValidationError) Error() string {
	return fmt.Sprintf("unanswered questions: %v", e.Missing)
}

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// ScoreQuiz turns the 20 answer values (1..5 each) into category totals and
// the top category. Ties resolve to the first category in declared order.
func ScoreQuiz(answers []int) (models.QuizResult, error) {
	var missing []string
	for i := 0; i < QuizQuestionCount; i++ {
		if i >= len(answers) || answers[i] < 1 || answers[i] > 5 {
			missing = append(missing, fmt.Sprintf("q%d", i+1))
		}
	}
	if len(missing) > 0 {
		return models.QuizResult{}, &QuizValidationError{Missing: missing}
	}

	scores := models.ScoreVector{}
	for _, cat := range Categories {
		scores[cat] = 0
	}
	for i, val := range answers[:QuizQuestionCount] {
		scores[Categories[i%5]] += val
	}

	top := Categories[0]
	best := scores[top]
	for _, cat := range Categories[1:] {
		if scores[cat] > best {
			top = cat
			best = scores[cat]
		}
	}

	return models.QuizResult{
		Scores:         scores,
		TopCategory:    top,
		CareerInterest: CategoryMap[top],
	}, nil
}

// SaveResult copies a quiz outcome onto the user's profile so the task
// scheduler and results page can read it after the session ends.
func (s *QuizService) SaveResult(userID string, result models.QuizResult) error {
	return s.db.Model(&models.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"career_interest": result.CareerInterest,
			"quiz_scores":     result.Scores,
		}).Error
}
