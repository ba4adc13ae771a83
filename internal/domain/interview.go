package domain

import (
	"fmt"
	"strings"
	"time"
)

// MinEvaluationExchange is the minimum number of exchange entries before an
// interview may be evaluated. Anything shorter is rejected without calling
// the collaborator.
const MinEvaluationExchange = 3

// InterviewEvaluation is the structured verdict extracted from the
// collaborator's evaluation response.
type InterviewEvaluation struct {
	Topic           string   `json:"topic"`
	ScoreConfidence int      `json:"score_confidence"`
	ScoreClarity    int      `json:"score_clarity"`
	Feedback        []string `json:"feedback"`
	Strengths       []string `json:"strengths"`
}

// InterviewRecord is a persisted completed interview. Created once, never
// mutated.
type InterviewRecord struct {
	ID              string
	UserID          string
	Topic           string
	Transcript      string
	ScoreConfidence int
	ScoreClarity    int
	Feedback        []string
	Strengths       []string
	CompletedAt     time.Time
}

// FlattenTranscript turns the role-tagged exchange into the linear transcript
// submitted for evaluation. User entries become "Candidate:", assistant
// entries "Interviewer:"; other roles are dropped.
func FlattenTranscript(exchange []ChatMessage) string {
	var b strings.Builder
	for _, m := range exchange {
		switch m.Role {
		case RoleUser:
			fmt.Fprintf(&b, "Candidate: %s\n\n", m.Content)
		case RoleAssistant:
			fmt.Fprintf(&b, "Interviewer: %s\n\n", m.Content)
		}
	}
	return b.String()
}
