package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateExamGroup(ctx context.Context, userID, examGroup string) error
	AddPoints(ctx context.Context, userID string, points int) error
	UpdateActivity(ctx context.Context, userID string, state domain.ActivityState) error
	DeleteUser(ctx context.Context, userID string) error
}

type sqlxUserRepository struct {
	db DBTX
}

func NewSQLXUserRepository(db *sqlx.DB) UserRepository {
	return &sqlxUserRepository{db: db}
}

func toUserModel(u *domain.User) *models.User {
	m := &models.User{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		ExamGroup:     u.ExamGroup,
		Points:        u.Points,
		CurrentStreak: u.CurrentStreak,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	if u.LastActivityDate != "" {
		m.LastActivityDate = sql.NullString{String: u.LastActivityDate, Valid: true}
	}
	if u.DeletedAt != nil {
		m.DeletedAt = sql.NullTime{Time: *u.DeletedAt, Valid: true}
	}
	return m
}

func toDomainUser(m *models.User) *domain.User {
	u := &domain.User{
		ID:            m.ID,
		Username:      m.Username,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		ExamGroup:     m.ExamGroup,
		Points:        m.Points,
		CurrentStreak: m.CurrentStreak,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.LastActivityDate.Valid {
		u.LastActivityDate = m.LastActivityDate.String
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		u.DeletedAt = &t
	}
	return u
}

func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	executor := GetExecutor(ctx, r.db)

	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	query := `INSERT INTO users (id, username, email, password_hash, exam_group, points, current_streak, last_activity_date, created_at, updated_at)
	          VALUES (:id, :username, :email, :password_hash, :exam_group, :points, :current_streak, :last_activity_date, :created_at, :updated_at)`

	if _, err := executor.NamedExecContext(ctx, query, toUserModel(user)); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqlxUserRepository) getUserWhere(ctx context.Context, clause string, arg interface{}) (*domain.User, error) {
	executor := GetExecutor(ctx, r.db)

	var m models.User
	query := `SELECT * FROM users WHERE ` + clause + ` AND deleted_at IS NULL`
	if err := executor.GetContext(ctx, &m, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(&m), nil
}

func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUserWhere(ctx, "id = ?", userID)
}

func (r *sqlxUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUserWhere(ctx, "username = ?", username)
}

func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUserWhere(ctx, "email = ?", email)
}

func (r *sqlxUserRepository) UpdateExamGroup(ctx context.Context, userID, examGroup string) error {
	executor := GetExecutor(ctx, r.db)

	query := `UPDATE users SET exam_group = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`
	result, err := executor.ExecContext(ctx, query, examGroup, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update exam group: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domain.NewNotFoundError("user not found")
	}
	return nil
}

func (r *sqlxUserRepository) AddPoints(ctx context.Context, userID string, points int) error {
	executor := GetExecutor(ctx, r.db)

	query := `UPDATE users SET points = points + ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`
	if _, err := executor.ExecContext(ctx, query, points, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to add points: %w", err)
	}
	return nil
}

func (r *sqlxUserRepository) UpdateActivity(ctx context.Context, userID string, state domain.ActivityState) error {
	executor := GetExecutor(ctx, r.db)

	var lastActivity sql.NullString
	if state.LastActivityDate != "" {
		lastActivity = sql.NullString{String: state.LastActivityDate, Valid: true}
	}

	query := `UPDATE users SET current_streak = ?, last_activity_date = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`
	if _, err := executor.ExecContext(ctx, query, state.Streak, lastActivity, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return nil
}

// DeleteUser removes the user row itself. Dependent rows are removed by the
// service inside the same transaction before this is called.
func (r *sqlxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	executor := GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domain.NewNotFoundError("user not found")
	}
	return nil
}
