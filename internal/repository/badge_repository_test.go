package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantBadge_NewGrant(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXBadgeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_badges")).
		WithArgs("user1", "badge1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	granted, err := repo.GrantBadge(context.Background(), "user1", "badge1")
	require.NoError(t, err)
	assert.True(t, granted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantBadge_AlreadyHeld(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXBadgeRepository(db)

	// ON CONFLICT DO NOTHING yields zero affected rows for a repeat grant.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_badges")).
		WithArgs("user1", "badge1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	granted, err := repo.GrantBadge(context.Background(), "user1", "badge1")
	require.NoError(t, err)
	assert.False(t, granted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBadgeByName_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXBadgeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM badges WHERE name = ?")).
		WithArgs("No Such Badge").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "icon"}))

	badge, err := repo.GetBadgeByName(context.Background(), "No Such Badge")
	require.NoError(t, err)
	assert.Nil(t, badge)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEarnedBadges(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXBadgeRepository(db)

	earnedAt := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "description", "icon", "earned_at"}).
		AddRow("b2", "Quiz Taker", "Completed your first quiz", "check-circle", earnedAt).
		AddRow("b1", "First Steps", "Created your account", "play-circle", earnedAt.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_badges")).
		WithArgs("user1").
		WillReturnRows(rows)

	earned, err := repo.ListEarnedBadges(context.Background(), "user1")
	require.NoError(t, err)
	require.Len(t, earned, 2)
	assert.Equal(t, "Quiz Taker", earned[0].Name)
	assert.Equal(t, "play-circle", earned[1].Icon)
	assert.NoError(t, mock.ExpectationsWereMet())
}
