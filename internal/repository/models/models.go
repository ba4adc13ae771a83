package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a []string column as a JSON array string.
type StringSlice []string

// Value implements the driver.Valuer interface.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface. NULL, empty strings and the
// literal "null" all scan to an empty slice.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// User is the persistence model for an account.
type User struct {
	ID               string         `db:"id"` // ULID
	Username         string         `db:"username"`
	Email            string         `db:"email"`
	PasswordHash     string         `db:"password_hash"`
	ExamGroup        string         `db:"exam_group"`
	Points           int            `db:"points"`
	CurrentStreak    int            `db:"current_streak"`
	LastActivityDate sql.NullString `db:"last_activity_date"` // YYYY-MM-DD, NULL before first activity
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
	DeletedAt        sql.NullTime   `db:"deleted_at"`
}

// Quiz is a curated quiz head row; its questions live in the questions table.
type Quiz struct {
	ID      string `db:"id"`
	Title   string `db:"title"`
	Subject string `db:"subject"`
}

// Question is one multiple-choice question of a curated quiz.
type Question struct {
	ID            string `db:"id"`
	QuizID        string `db:"quiz_id"`
	QuestionText  string `db:"question_text"`
	OptionA       string `db:"option_a"`
	OptionB       string `db:"option_b"`
	OptionC       string `db:"option_c"`
	OptionD       string `db:"option_d"`
	CorrectAnswer string `db:"correct_answer"`
}

// Attempt records one completed quiz submission. Exactly one of QuizID and
// AITopic is non-NULL.
type Attempt struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	QuizID      sql.NullString `db:"quiz_id"`
	AITopic     sql.NullString `db:"ai_topic"`
	Score       int            `db:"score"`
	Total       int            `db:"total_questions"`
	CompletedAt time.Time      `db:"completed_at"`
}

// AttemptWithQuiz joins an attempt with its quiz head for display.
type AttemptWithQuiz struct {
	Attempt
	QuizTitle sql.NullString `db:"quiz_title"`
	Subject   sql.NullString `db:"subject"`
}

// ScheduleTask is one entry of a user's study schedule.
type ScheduleTask struct {
	ID         string       `db:"id"`
	UserID     string       `db:"user_id"`
	Title      string       `db:"title"`
	StartTime  time.Time    `db:"start_time"`
	EndTime    sql.NullTime `db:"end_time"`
	IsComplete bool         `db:"is_complete"`
}

// Post is a forum post; ParentPostID is NULL for top-level posts.
type Post struct {
	ID           string         `db:"id"`
	UserID       string         `db:"user_id"`
	Channel      string         `db:"channel"`
	Content      string         `db:"content"`
	MediaURL     sql.NullString `db:"media_url"`
	ParentPostID sql.NullString `db:"parent_post_id"`
	CreatedAt    time.Time      `db:"created_at"`
}

// PostWithAuthor joins a post with its author's display fields.
type PostWithAuthor struct {
	Post
	Username  string `db:"username"`
	ExamGroup string `db:"exam_group"`
}

// Badge is one row of the badge catalog seeded by migration.
type Badge struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Icon        string `db:"icon"`
}

// UserBadge links a user to an earned badge. (user_id, badge_id) is unique;
// a second grant of the same badge is a no-op.
type UserBadge struct {
	UserID   string    `db:"user_id"`
	BadgeID  string    `db:"badge_id"`
	EarnedAt time.Time `db:"earned_at"`
}

// EarnedBadge joins a grant with the catalog row for listing.
type EarnedBadge struct {
	Badge
	EarnedAt time.Time `db:"earned_at"`
}

// Interview stores a finished mock-interview session with its evaluation.
type Interview struct {
	ID              string      `db:"id"`
	UserID          string      `db:"user_id"`
	Topic           string      `db:"topic"`
	Transcript      string      `db:"transcript"`
	ScoreConfidence int         `db:"score_confidence"`
	ScoreClarity    int         `db:"score_clarity"`
	Feedback        StringSlice `db:"feedback"`
	Strengths       StringSlice `db:"strengths"`
	CreatedAt       time.Time   `db:"created_at"`
}
