package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository/models"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/util"

	"github.com/jmoiron/sqlx"
)

// AttemptRepository persists completed quiz submissions.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *domain.Attempt) error
	ListAttemptsByUser(ctx context.Context, userID string) ([]domain.Attempt, error)
	CountAttemptsByUser(ctx context.Context, userID string) (int, error)
	DeleteAttemptsByUser(ctx context.Context, userID string) error
}

type sqlxAttemptRepository struct {
	db DBTX
}

func NewSQLXAttemptRepository(db *sqlx.DB) AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func (r *sqlxAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	if err := attempt.Validate(); err != nil {
		return err
	}

	executor := GetExecutor(ctx, r.db)

	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.CompletedAt.IsZero() {
		attempt.CompletedAt = time.Now()
	}

	m := models.Attempt{
		ID:          attempt.ID,
		UserID:      attempt.UserID,
		QuizID:      util.StringToNullString(attempt.QuizID),
		AITopic:     util.StringToNullString(attempt.AITopic),
		Score:       attempt.Score,
		Total:       attempt.Total,
		CompletedAt: attempt.CompletedAt,
	}

	query := `INSERT INTO quiz_attempts (id, user_id, quiz_id, ai_topic, score, total_questions, completed_at)
	          VALUES (:id, :user_id, :quiz_id, :ai_topic, :score, :total_questions, :completed_at)`
	if _, err := executor.NamedExecContext(ctx, query, &m); err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

// ListAttemptsByUser returns all attempts newest first, joined with the quiz
// head so static attempts carry their title and subject.
func (r *sqlxAttemptRepository) ListAttemptsByUser(ctx context.Context, userID string) ([]domain.Attempt, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.AttemptWithQuiz
	query := `SELECT a.*, q.title AS quiz_title, q.subject AS subject
	          FROM quiz_attempts a
	          LEFT JOIN quizzes q ON q.id = a.quiz_id
	          WHERE a.user_id = ?
	          ORDER BY a.completed_at DESC`
	if err := executor.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	attempts := make([]domain.Attempt, 0, len(rows))
	for _, m := range rows {
		attempts = append(attempts, domain.Attempt{
			ID:          m.ID,
			UserID:      m.UserID,
			QuizID:      m.QuizID.String,
			QuizTitle:   m.QuizTitle.String,
			Subject:     m.Subject.String,
			AITopic:     m.AITopic.String,
			Score:       m.Score,
			Total:       m.Total,
			CompletedAt: m.CompletedAt,
		})
	}
	return attempts, nil
}

func (r *sqlxAttemptRepository) CountAttemptsByUser(ctx context.Context, userID string) (int, error) {
	executor := GetExecutor(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM quiz_attempts WHERE user_id = ?`
	if err := executor.GetContext(ctx, &count, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	return count, nil
}

func (r *sqlxAttemptRepository) DeleteAttemptsByUser(ctx context.Context, userID string) error {
	executor := GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, `DELETE FROM quiz_attempts WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete attempts: %w", err)
	}
	return nil
}
