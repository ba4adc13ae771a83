// Package dto defines the request and response shapes of the HTTP API.
package dto

import "time"

// --- Auth ---

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	ExamGroup string `json:"exam_group"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	ExamGroup     string `json:"exam_group"`
	Points        int    `json:"points"`
	CurrentStreak int    `json:"current_streak"`
}

type ChangeExamGroupRequest struct {
	ExamGroup string `json:"exam_group"`
}

// --- Static quizzes ---

type QuizSummaryResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
}

// QuestionResponse deliberately omits the correct answer.
type QuestionResponse struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
}

type QuizDetailResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Subject   string             `json:"subject"`
	Questions []QuestionResponse `json:"questions"`
}

type SubmitQuizRequest struct {
	// Answers maps question ID to the submitted option text.
	Answers map[string]string `json:"answers"`
}

type QuestionResultResponse struct {
	QuestionText    string `json:"question_text"`
	SubmittedAnswer string `json:"submitted_answer"`
	CorrectAnswer   string `json:"correct_answer"`
	IsCorrect       bool   `json:"is_correct"`
}

type SubmitQuizResponse struct {
	Score         int                      `json:"score"`
	Total         int                      `json:"total"`
	PointsAwarded int                      `json:"points_awarded"`
	Results       []QuestionResultResponse `json:"results"`
	NewBadges     []BadgeResponse          `json:"new_badges"`
}

// --- AI study tools ---

type GenerateQuizRequest struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
	Difficulty   string `json:"difficulty"`
	IsLateNight  bool   `json:"is_late_night"`
	IsDistracted bool   `json:"is_distracted"`
}

type GeneratedQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
}

type GeneratedQuizResponse struct {
	Quiz []GeneratedQuestion `json:"quiz"`
}

type SubmitAIQuizRequest struct {
	Topic string `json:"topic"`
	Score int    `json:"score"`
	Total int    `json:"total"`
}

type SubmitAIQuizResponse struct {
	PointsAwarded int             `json:"points_awarded"`
	NewBadges     []BadgeResponse `json:"new_badges"`
}

type DoubtRequest struct {
	Question string `json:"question"`
}

type DoubtResponse struct {
	Answer string `json:"answer"`
}

type NotesRequest struct {
	Text string `json:"text"`
}

type NotesResponse struct {
	Notes string `json:"notes"`
}

type FlashcardsRequest struct {
	Topic    string `json:"topic"`
	NumCards int    `json:"num_cards"`
}

type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type FlashcardsResponse struct {
	Flashcards []Flashcard `json:"flashcards"`
}

type DiagramRequest struct {
	Topic string `json:"topic"`
}

type DiagramResponse struct {
	MermaidCode string `json:"mermaid_code"`
}

// --- Schedule ---

type CreateTaskRequest struct {
	Title     string     `json:"title"`
	StartTime time.Time  `json:"start"`
	EndTime   *time.Time `json:"end,omitempty"`
}

type TaskResponse struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	StartTime  time.Time  `json:"start"`
	EndTime    *time.Time `json:"end,omitempty"`
	IsComplete bool       `json:"is_complete"`
}

type ToggleTaskResponse struct {
	Task          TaskResponse    `json:"task"`
	CurrentStreak int             `json:"current_streak"`
	NewBadges     []BadgeResponse `json:"new_badges"`
}

// --- Community ---

type CreatePostRequest struct {
	Content      string `json:"content"`
	MediaURL     string `json:"media_url,omitempty"`
	ParentPostID string `json:"parent_post_id,omitempty"`
}

type PostResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	MediaURL  string    `json:"media_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ChannelPostsResponse struct {
	Channel string         `json:"channel"`
	Posts   []PostResponse `json:"posts"`
}

// --- Badges ---

type BadgeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type EarnedBadgeResponse struct {
	BadgeResponse
	EarnedAt time.Time `json:"earned_at"`
}

// --- Profile / stats ---

type SubjectStatResponse struct {
	Average int `json:"average"`
	Count   int `json:"count"`
}

type HistoryEntryResponse struct {
	Name        string    `json:"name"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	CompletedAt time.Time `json:"completed_at"`
}

type StatsResponse struct {
	Period         string                         `json:"period"`
	TotalAttempts  int                            `json:"total_attempts"`
	OverallAverage int                            `json:"overall_average"`
	SubjectStats   map[string]SubjectStatResponse `json:"subject_stats"`
	SubjectLabels  []string                       `json:"subject_labels"`
	SubjectData    []int                          `json:"subject_data"`
	WeakestSubject string                         `json:"weakest_subject"`
	History        []HistoryEntryResponse         `json:"history"`
	TrendLabels    []string                       `json:"trend_labels"`
	TrendData      []int                          `json:"trend_data"`
	CoachFeedback  string                         `json:"coach_feedback"`
}

type HeatmapEntryResponse struct {
	Topic      string `json:"topic"`
	Confidence int    `json:"confidence"`
}

type RevisionPlanEntryResponse struct {
	Day   int    `json:"day"`
	Topic string `json:"topic"`
}

type RevisionPlanResponse struct {
	Plan    []RevisionPlanEntryResponse `json:"plan"`
	Message string                      `json:"message,omitempty"`
}

type ProfileResponse struct {
	User       UserResponse              `json:"user"`
	Stats      StatsResponse             `json:"stats"`
	Badges     []EarnedBadgeResponse     `json:"badges"`
	Heatmap    []HeatmapEntryResponse    `json:"heatmap"`
	Interviews []InterviewRecordResponse `json:"interviews"`
}

// DashboardResponse is the landing view: today's schedule progress plus the
// all-time performance picture and trend-based coaching.
type DashboardResponse struct {
	User            UserResponse                   `json:"user"`
	TodayTasks      []TaskResponse                 `json:"today_tasks"`
	ProgressPercent int                            `json:"progress_percent"`
	TotalAttempts   int                            `json:"total_attempts"`
	OverallAverage  int                            `json:"overall_average"`
	TrendLabels     []string                       `json:"trend_labels"`
	TrendData       []int                          `json:"trend_data"`
	SubjectStats    map[string]SubjectStatResponse `json:"subject_stats"`
	SubjectLabels   []string                       `json:"subject_labels"`
	SubjectData     []int                          `json:"subject_data"`
	WeakestSubject  string                         `json:"weakest_subject"`
	CoachFeedback   string                         `json:"coach_feedback"`
}

// --- Interview ---

type ChatMessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type InterviewTurnRequest struct {
	History []ChatMessageDTO `json:"history"`
}

type InterviewTurnResponse struct {
	Reply string `json:"reply"`
}

type InterviewEvaluateRequest struct {
	History []ChatMessageDTO `json:"history"`
}

type InterviewEvaluationResponse struct {
	Topic           string   `json:"topic"`
	ScoreConfidence int      `json:"score_confidence"`
	ScoreClarity    int      `json:"score_clarity"`
	Feedback        []string `json:"feedback"`
	Strengths       []string `json:"strengths"`
}

type InterviewRecordResponse struct {
	ID              string    `json:"id"`
	Topic           string    `json:"topic"`
	ScoreConfidence int       `json:"score_confidence"`
	ScoreClarity    int       `json:"score_clarity"`
	Feedback        []string  `json:"feedback"`
	Strengths       []string  `json:"strengths"`
	CompletedAt     time.Time `json:"completed_at"`
}
