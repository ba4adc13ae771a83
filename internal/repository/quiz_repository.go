package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuizRepository reads the curated quiz catalog. The catalog is seeded by
// migration and never written at runtime.
type QuizRepository interface {
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	GetQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error)
	GetQuestions(ctx context.Context, quizID string) ([]domain.Question, error)
}

type sqlxQuizRepository struct {
	db DBTX
}

func NewSQLXQuizRepository(db *sqlx.DB) QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func (r *sqlxQuizRepository) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.Quiz
	query := `SELECT * FROM quizzes ORDER BY subject, title`
	if err := executor.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	quizzes := make([]domain.Quiz, 0, len(rows))
	for _, m := range rows {
		quizzes = append(quizzes, domain.Quiz{ID: m.ID, Title: m.Title, Subject: m.Subject})
	}
	return quizzes, nil
}

func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error) {
	executor := GetExecutor(ctx, r.db)

	var m models.Quiz
	if err := executor.GetContext(ctx, &m, `SELECT * FROM quizzes WHERE id = ?`, quizID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return &domain.Quiz{ID: m.ID, Title: m.Title, Subject: m.Subject}, nil
}

func (r *sqlxQuizRepository) GetQuestions(ctx context.Context, quizID string) ([]domain.Question, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.Question
	query := `SELECT * FROM questions WHERE quiz_id = ? ORDER BY id`
	if err := executor.SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	questions := make([]domain.Question, 0, len(rows))
	for _, m := range rows {
		questions = append(questions, domain.Question{
			ID:            m.ID,
			QuizID:        m.QuizID,
			QuestionText:  m.QuestionText,
			OptionA:       m.OptionA,
			OptionB:       m.OptionB,
			OptionC:       m.OptionC,
			OptionD:       m.OptionD,
			CorrectAnswer: m.CorrectAnswer,
		})
	}
	return questions, nil
}
