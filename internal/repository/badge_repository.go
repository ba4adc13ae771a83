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

// BadgeRepository reads the badge catalog and manages grants.
type BadgeRepository interface {
	GetBadgeByName(ctx context.Context, name string) (*domain.Badge, error)
	// GrantBadge records the grant if absent; reports whether a new grant
	// was made. Granting an already-held badge is a no-op.
	GrantBadge(ctx context.Context, userID, badgeID string) (bool, error)
	ListEarnedBadges(ctx context.Context, userID string) ([]domain.EarnedBadge, error)
	DeleteGrantsByUser(ctx context.Context, userID string) error
}

type sqlxBadgeRepository struct {
	db DBTX
}

func NewSQLXBadgeRepository(db *sqlx.DB) BadgeRepository {
	return &sqlxBadgeRepository{db: db}
}

func (r *sqlxBadgeRepository) GetBadgeByName(ctx context.Context, name string) (*domain.Badge, error) {
	executor := GetExecutor(ctx, r.db)

	var m models.Badge
	if err := executor.GetContext(ctx, &m, `SELECT * FROM badges WHERE name = ?`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get badge: %w", err)
	}
	return &domain.Badge{ID: m.ID, Name: m.Name, Description: m.Description, Icon: m.Icon}, nil
}

func (r *sqlxBadgeRepository) GrantBadge(ctx context.Context, userID, badgeID string) (bool, error) {
	executor := GetExecutor(ctx, r.db)

	query := `INSERT INTO user_badges (user_id, badge_id, earned_at) VALUES (?, ?, ?)
	          ON CONFLICT (user_id, badge_id) DO NOTHING`
	result, err := executor.ExecContext(ctx, query, userID, badgeID, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to grant badge: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read grant result: %w", err)
	}
	return rows > 0, nil
}

func (r *sqlxBadgeRepository) ListEarnedBadges(ctx context.Context, userID string) ([]domain.EarnedBadge, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.EarnedBadge
	query := `SELECT b.id, b.name, b.description, b.icon, ub.earned_at
	          FROM user_badges ub
	          JOIN badges b ON b.id = ub.badge_id
	          WHERE ub.user_id = ?
	          ORDER BY ub.earned_at DESC`
	if err := executor.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list earned badges: %w", err)
	}

	earned := make([]domain.EarnedBadge, 0, len(rows))
	for _, m := range rows {
		earned = append(earned, domain.EarnedBadge{
			Badge:    domain.Badge{ID: m.ID, Name: m.Name, Description: m.Description, Icon: m.Icon},
			EarnedAt: m.EarnedAt,
		})
	}
	return earned, nil
}

func (r *sqlxBadgeRepository) DeleteGrantsByUser(ctx context.Context, userID string) error {
	executor := GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, `DELETE FROM user_badges WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete badge grants: %w", err)
	}
	return nil
}
