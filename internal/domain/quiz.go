package domain

import "time"

// Quiz is a static quiz from the catalog.
type Quiz struct {
	ID      string
	Title   string
	Subject string
}

// Question is one multiple-choice question of a static quiz.
type Question struct {
	ID            string
	QuizID        string
	QuestionText  string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectAnswer string
}

// Options returns the answer choices in display order.
func (q *Question) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// QuestionResult is the graded outcome for one question of a submission.
type QuestionResult struct {
	QuestionText    string `json:"question_text"`
	SubmittedAnswer string `json:"submitted_answer"`
	CorrectAnswer   string `json:"correct_answer"`
	IsCorrect       bool   `json:"is_correct"`
}

// PointsPerCorrectAnswer is credited to the user for each correct answer.
const PointsPerCorrectAnswer = 10

// GradeQuiz scores a submission against the quiz questions. Unanswered
// questions count as incorrect.
func GradeQuiz(questions []Question, answers map[string]string) (score int, results []QuestionResult) {
	results = make([]QuestionResult, 0, len(questions))
	for _, q := range questions {
		submitted := answers[q.ID]
		correct := submitted == q.CorrectAnswer
		if correct {
			score++
		}
		results = append(results, QuestionResult{
			QuestionText:    q.QuestionText,
			SubmittedAnswer: submitted,
			CorrectAnswer:   q.CorrectAnswer,
			IsCorrect:       correct,
		})
	}
	return score, results
}

// ScheduleTask is one calendar entry owned by a user.
type ScheduleTask struct {
	ID         string     `json:"id"`
	UserID     string     `json:"-"`
	Title      string     `json:"title"`
	StartTime  time.Time  `json:"start"`
	EndTime    *time.Time `json:"end,omitempty"`
	IsComplete bool       `json:"is_complete"`
}

// Post is a community forum message; top-level when ParentPostID is empty.
type Post struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	ExamGroup    string    `json:"-"`
	Channel      string    `json:"-"`
	Content      string    `json:"content"`
	MediaURL     string    `json:"media_url,omitempty"`
	ParentPostID string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
