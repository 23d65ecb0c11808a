package services

import (
	"context"
	"math/rand/v2"

	"github.com/Alexis-Monk/triviaapi-U/internal/models"
)

// AllCategories selects candidates from every category.
const AllCategories uint = 0

type QuizService struct {
	trivia *TriviaService
	intN   func(n int) int
}

func NewQuizService(trivia *TriviaService) *QuizService {
	return &QuizService{trivia: trivia, intN: rand.IntN}
}

// NewQuizServiceWithRand is NewQuizService with a caller supplied source,
// used to make draws reproducible.
func NewQuizServiceWithRand(trivia *TriviaService, r *rand.Rand) *QuizService {
	return &QuizService{trivia: trivia, intN: r.IntN}
}

// NextQuestion picks a random question from the category that is not listed
// in previous. It returns nil, nil once every candidate has been played.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*models.Question, error) {
	var (
		candidates []models.Question
		err        error
	)
	if categoryID == AllCategories {
		candidates, err = s.trivia.ListQuestions(ctx)
	} else {
		if _, err = s.trivia.GetCategory(ctx, categoryID); err != nil {
			return nil, err
		}
		candidates, err = s.trivia.FindQuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}
	return s.Draw(candidates, previous), nil
}

// Draw returns a uniformly random candidate whose id is not in previous.
func (s *QuizService) Draw(candidates []models.Question, previous []uint) *models.Question {
	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	available := make([]models.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		return nil
	}

	picked := available[s.intN(len(available))]
	return &picked
}
