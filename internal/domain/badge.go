package domain

import "time"

// Badge is one entry of the static achievement catalog, read-only at runtime.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"` // Lucide icon tag
}

// BadgeGrant links a user to a badge they earned. At most one grant exists
// per (user, badge) pair.
type BadgeGrant struct {
	UserID   string
	BadgeID  string
	EarnedAt time.Time
}

// EarnedBadge is a grant joined with its catalog entry for display.
type EarnedBadge struct {
	Badge
	EarnedAt time.Time `json:"earned_at"`
}

// BadgeTrigger identifies the event that caused a badge evaluation.
type BadgeTrigger string

const (
	TriggerRegistration BadgeTrigger = "registration"
	TriggerQuizSubmit   BadgeTrigger = "quiz_submit"
	TriggerTaskComplete BadgeTrigger = "task_complete"
	TriggerFirstPost    BadgeTrigger = "first_post"
)

// Catalog badge names, matched by the evaluator's rule table.
const (
	BadgeFirstSteps      = "First Steps"
	BadgeQuizTaker       = "Quiz Taker"
	BadgeQuizMaster      = "Quiz Master"
	BadgeStreakStarter   = "Streak Starter"
	BadgeCommunityPoster = "Community Poster"
)

// Rule thresholds.
const (
	QuizMasterAttempts  = 10
	StreakStarterLength = 3
)
