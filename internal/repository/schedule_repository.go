package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository/models"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/util"

	"github.com/jmoiron/sqlx"
)

// ScheduleRepository persists study-schedule tasks.
type ScheduleRepository interface {
	CreateTask(ctx context.Context, task *domain.ScheduleTask) error
	GetTaskByID(ctx context.Context, taskID string) (*domain.ScheduleTask, error)
	ListTasksByUser(ctx context.Context, userID string) ([]domain.ScheduleTask, error)
	SetComplete(ctx context.Context, taskID string, complete bool) error
	DeleteTask(ctx context.Context, taskID string) error
	DeleteTasksByUser(ctx context.Context, userID string) error
}

type sqlxScheduleRepository struct {
	db DBTX
}

func NewSQLXScheduleRepository(db *sqlx.DB) ScheduleRepository {
	return &sqlxScheduleRepository{db: db}
}

func toScheduleModel(t *domain.ScheduleTask) *models.ScheduleTask {
	return &models.ScheduleTask{
		ID:         t.ID,
		UserID:     t.UserID,
		Title:      t.Title,
		StartTime:  t.StartTime,
		EndTime:    util.TimeToNullTime(t.EndTime),
		IsComplete: t.IsComplete,
	}
}

func toDomainTask(m *models.ScheduleTask) *domain.ScheduleTask {
	return &domain.ScheduleTask{
		ID:         m.ID,
		UserID:     m.UserID,
		Title:      m.Title,
		StartTime:  m.StartTime,
		EndTime:    util.NullTimeToPtr(m.EndTime),
		IsComplete: m.IsComplete,
	}
}

func (r *sqlxScheduleRepository) CreateTask(ctx context.Context, task *domain.ScheduleTask) error {
	executor := GetExecutor(ctx, r.db)

	if task.ID == "" {
		task.ID = util.NewULID()
	}

	query := `INSERT INTO schedule_tasks (id, user_id, title, start_time, end_time, is_complete)
	          VALUES (:id, :user_id, :title, :start_time, :end_time, :is_complete)`
	if _, err := executor.NamedExecContext(ctx, query, toScheduleModel(task)); err != nil {
		return fmt.Errorf("failed to create schedule task: %w", err)
	}
	return nil
}

func (r *sqlxScheduleRepository) GetTaskByID(ctx context.Context, taskID string) (*domain.ScheduleTask, error) {
	executor := GetExecutor(ctx, r.db)

	var m models.ScheduleTask
	if err := executor.GetContext(ctx, &m, `SELECT * FROM schedule_tasks WHERE id = ?`, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule task: %w", err)
	}
	return toDomainTask(&m), nil
}

func (r *sqlxScheduleRepository) ListTasksByUser(ctx context.Context, userID string) ([]domain.ScheduleTask, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.ScheduleTask
	query := `SELECT * FROM schedule_tasks WHERE user_id = ? ORDER BY start_time`
	if err := executor.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list schedule tasks: %w", err)
	}

	tasks := make([]domain.ScheduleTask, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, *toDomainTask(&rows[i]))
	}
	return tasks, nil
}

func (r *sqlxScheduleRepository) SetComplete(ctx context.Context, taskID string, complete bool) error {
	executor := GetExecutor(ctx, r.db)

	query := `UPDATE schedule_tasks SET is_complete = ? WHERE id = ?`
	result, err := executor.ExecContext(ctx, query, complete, taskID)
	if err != nil {
		return fmt.Errorf("failed to update schedule task: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domain.NewNotFoundError("schedule task not found")
	}
	return nil
}

func (r *sqlxScheduleRepository) DeleteTask(ctx context.Context, taskID string) error {
	executor := GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, `DELETE FROM schedule_tasks WHERE id = ?`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule task: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domain.NewNotFoundError("schedule task not found")
	}
	return nil
}

func (r *sqlxScheduleRepository) DeleteTasksByUser(ctx context.Context, userID string) error {
	executor := GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, `DELETE FROM schedule_tasks WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete schedule tasks: %w", err)
	}
	return nil
}
