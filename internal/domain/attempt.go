package domain

import "time"

// Attempt is one completed quiz submission, either for a static quiz
// (QuizID set) or an AI-generated one (AITopic set). The two keys are
// mutually exclusive. Attempts are immutable once created.
type Attempt struct {
	ID          string
	UserID      string
	QuizID      string // empty for AI quizzes
	QuizTitle   string // resolved from the quiz, empty for AI quizzes
	Subject     string // resolved from the quiz, empty for AI quizzes
	AITopic     string // empty for static quizzes
	Score       int
	Total       int
	CompletedAt time.Time
}

// Validate enforces the attempt invariants: total >= score >= 0, a positive
// total, and exactly one of the quiz id / AI topic keys.
func (a *Attempt) Validate() error {
	if a.Score < 0 {
		return NewError(CodeValidation, "score must be non-negative", nil)
	}
	if a.Total <= 0 {
		return NewError(CodeValidation, "total must be positive", nil)
	}
	if a.Score > a.Total {
		return NewError(CodeValidation, "score cannot exceed total", nil)
	}
	if (a.QuizID == "") == (a.AITopic == "") {
		return NewError(CodeValidation, "attempt must reference exactly one of quiz id or AI topic", nil)
	}
	return nil
}

// SubjectKey is the grouping key for aggregation: the quiz subject for
// static attempts, the free-text topic for AI attempts.
func (a *Attempt) SubjectKey() string {
	if a.AITopic != "" {
		return a.AITopic
	}
	return a.Subject
}

// DisplayName is the label used in history listings.
func (a *Attempt) DisplayName() string {
	switch {
	case a.AITopic != "":
		return a.AITopic
	case a.QuizTitle != "":
		return a.QuizTitle
	default:
		return "Quiz"
	}
}
