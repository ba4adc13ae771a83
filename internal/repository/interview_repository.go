package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository/models"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/util"

	"github.com/jmoiron/sqlx"
)

// InterviewRepository persists evaluated mock-interview sessions.
type InterviewRepository interface {
	CreateInterview(ctx context.Context, rec *domain.InterviewRecord) error
	ListInterviewsByUser(ctx context.Context, userID string) ([]domain.InterviewRecord, error)
	DeleteInterviewsByUser(ctx context.Context, userID string) error
}

type sqlxInterviewRepository struct {
	db DBTX
}

func NewSQLXInterviewRepository(db *sqlx.DB) InterviewRepository {
	return &sqlxInterviewRepository{db: db}
}

func (r *sqlxInterviewRepository) CreateInterview(ctx context.Context, rec *domain.InterviewRecord) error {
	executor := GetExecutor(ctx, r.db)

	if rec.ID == "" {
		rec.ID = util.NewULID()
	}
	if rec.CompletedAt.IsZero() {
		rec.CompletedAt = time.Now()
	}

	m := models.Interview{
		ID:              rec.ID,
		UserID:          rec.UserID,
		Topic:           rec.Topic,
		Transcript:      rec.Transcript,
		ScoreConfidence: rec.ScoreConfidence,
		ScoreClarity:    rec.ScoreClarity,
		Feedback:        models.StringSlice(rec.Feedback),
		Strengths:       models.StringSlice(rec.Strengths),
		CreatedAt:       rec.CompletedAt,
	}

	query := `INSERT INTO interviews (id, user_id, topic, transcript, score_confidence, score_clarity, feedback, strengths, created_at)
	          VALUES (:id, :user_id, :topic, :transcript, :score_confidence, :score_clarity, :feedback, :strengths, :created_at)`
	if _, err := executor.NamedExecContext(ctx, query, &m); err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

func (r *sqlxInterviewRepository) ListInterviewsByUser(ctx context.Context, userID string) ([]domain.InterviewRecord, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.Interview
	query := `SELECT * FROM interviews WHERE user_id = ? ORDER BY created_at DESC`
	if err := executor.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}

	records := make([]domain.InterviewRecord, 0, len(rows))
	for _, m := range rows {
		records = append(records, domain.InterviewRecord{
			ID:              m.ID,
			UserID:          m.UserID,
			Topic:           m.Topic,
			Transcript:      m.Transcript,
			ScoreConfidence: m.ScoreConfidence,
			ScoreClarity:    m.ScoreClarity,
			Feedback:        []string(m.Feedback),
			Strengths:       []string(m.Strengths),
			CompletedAt:     m.CreatedAt,
		})
	}
	return records, nil
}

func (r *sqlxInterviewRepository) DeleteInterviewsByUser(ctx context.Context, userID string) error {
	executor := GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, `DELETE FROM interviews WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete interviews: %w", err)
	}
	return nil
}
