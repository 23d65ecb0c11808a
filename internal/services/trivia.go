package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Alexis-Monk/triviaapi-U/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrPersistence = errors.New("persistence failure")
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

type QuestionInput struct {
	Question   string
	Answer     string
	CategoryID uint
	Difficulty int
}

func (s *TriviaService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CategoryTypes returns every category keyed by id.
func (s *TriviaService) CategoryTypes(ctx context.Context) (map[uint]string, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	types := make(map[uint]string, len(categories))
	for _, c := range categories {
		types[c.ID] = c.Type
	}
	return types, nil
}

func (s *TriviaService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *TriviaService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &category, nil
}

func (s *TriviaService) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.WithContext(ctx).First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return &question, nil
}

func (s *TriviaService) FindQuestionsByCategory(ctx context.Context, categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("find questions in category %d: %w", categoryID, err)
	}
	return questions, nil
}

// searchCondition builds a case-insensitive substring match on the question
// column. Postgres folds case with ILIKE for any script; SQLite's LOWER only
// folds ASCII letters.
func searchCondition(dialect, term string) (string, string) {
	escaped := likeEscaper.Replace(term)
	if dialect == "postgres" {
		return `question ILIKE ? ESCAPE '\'`, "%" + escaped + "%"
	}
	return `LOWER(question) LIKE ? ESCAPE '\'`, "%" + strings.ToLower(escaped) + "%"
}

// SearchQuestions matches term anywhere in the question text, ignoring case.
// LIKE wildcards in term are matched literally.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	cond, pattern := searchCondition(s.db.Dialector.Name(), term)

	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where(cond, pattern).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

func (s *TriviaService) CreateQuestion(ctx context.Context, input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		CategoryID: input.CategoryID,
		Difficulty: input.Difficulty,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("category %d does not exist", input.CategoryID)
			}
			return err
		}
		return tx.Create(&question).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create question: %w", ErrPersistence, err)
	}
	return &question, nil
}

func (s *TriviaService) DeleteQuestion(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: delete question %d: %w", ErrPersistence, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	return nil
}
