package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/handler"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Manual mock of service.QuizService.
type mockQuizService struct {
	listQuizzesFunc  func(ctx context.Context) ([]dto.QuizSummaryResponse, error)
	getQuizFunc      func(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error)
	submitQuizFunc   func(ctx context.Context, userID, quizID string, answers map[string]string) (*dto.SubmitQuizResponse, error)
	submitAIQuizFunc func(ctx context.Context, userID, topic string, score, total int) (*dto.SubmitAIQuizResponse, error)
}

func (m *mockQuizService) ListQuizzes(ctx context.Context) ([]dto.QuizSummaryResponse, error) {
	if m.listQuizzesFunc != nil {
		return m.listQuizzesFunc(ctx)
	}
	panic("mockQuizService.listQuizzesFunc not implemented")
}

func (m *mockQuizService) GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
	if m.getQuizFunc != nil {
		return m.getQuizFunc(ctx, quizID)
	}
	panic("mockQuizService.getQuizFunc not implemented")
}

func (m *mockQuizService) SubmitQuiz(ctx context.Context, userID, quizID string, answers map[string]string) (*dto.SubmitQuizResponse, error) {
	if m.submitQuizFunc != nil {
		return m.submitQuizFunc(ctx, userID, quizID, answers)
	}
	panic("mockQuizService.submitQuizFunc not implemented")
}

func (m *mockQuizService) SubmitAIQuiz(ctx context.Context, userID, topic string, score, total int) (*dto.SubmitAIQuizResponse, error) {
	if m.submitAIQuizFunc != nil {
		return m.submitAIQuizFunc(ctx, userID, topic, score, total)
	}
	panic("mockQuizService.submitAIQuizFunc not implemented")
}

// fakeAuth stands in for the auth middleware and plants the user ID local.
func fakeAuth(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, userID)
		return c.Next()
	}
}

func newQuizTestApp(svc *mockQuizService, userID string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewQuizHandler(svc)
	app.Get("/quizzes", fakeAuth(userID), h.ListQuizzes)
	app.Get("/quizzes/:id", fakeAuth(userID), h.GetQuiz)
	app.Post("/quizzes/:id/submit", fakeAuth(userID), h.SubmitQuiz)
	app.Post("/ai/quiz/submit", fakeAuth(userID), h.SubmitAIQuiz)
	return app
}

func TestListQuizzes(t *testing.T) {
	svc := &mockQuizService{
		listQuizzesFunc: func(ctx context.Context) ([]dto.QuizSummaryResponse, error) {
			return []dto.QuizSummaryResponse{
				{ID: "quiz1", Title: "Physics Quiz 1", Subject: "Physics"},
			}, nil
		},
	}
	app := newQuizTestApp(svc, "user1")

	resp, err := app.Test(httptest.NewRequest("GET", "/quizzes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []dto.QuizSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "Physics Quiz 1", body[0].Title)
}

func TestGetQuiz_NotFound(t *testing.T) {
	svc := &mockQuizService{
		getQuizFunc: func(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
			return nil, domain.NewNotFoundError("quiz not found")
		},
	}
	app := newQuizTestApp(svc, "user1")

	resp, err := app.Test(httptest.NewRequest("GET", "/quizzes/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmitQuiz(t *testing.T) {
	var gotUserID, gotQuizID string
	var gotAnswers map[string]string

	svc := &mockQuizService{
		submitQuizFunc: func(ctx context.Context, userID, quizID string, answers map[string]string) (*dto.SubmitQuizResponse, error) {
			gotUserID, gotQuizID, gotAnswers = userID, quizID, answers
			return &dto.SubmitQuizResponse{Score: 2, Total: 3, PointsAwarded: 20}, nil
		},
	}
	app := newQuizTestApp(svc, "user1")

	reqBody, _ := json.Marshal(dto.SubmitQuizRequest{
		Answers: map[string]string{"q1": "Newton", "q2": "mgh"},
	})
	req := httptest.NewRequest("POST", "/quizzes/quiz1/submit", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "user1", gotUserID)
	assert.Equal(t, "quiz1", gotQuizID)
	assert.Equal(t, "Newton", gotAnswers["q1"])

	var body dto.SubmitQuizResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Score)
	assert.Equal(t, 20, body.PointsAwarded)
}

func TestSubmitQuiz_BadBody(t *testing.T) {
	app := newQuizTestApp(&mockQuizService{}, "user1")

	req := httptest.NewRequest("POST", "/quizzes/quiz1/submit", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitAIQuiz(t *testing.T) {
	svc := &mockQuizService{
		submitAIQuizFunc: func(ctx context.Context, userID, topic string, score, total int) (*dto.SubmitAIQuizResponse, error) {
			assert.Equal(t, "user1", userID)
			assert.Equal(t, "Optics", topic)
			assert.Equal(t, 4, score)
			assert.Equal(t, 5, total)
			return &dto.SubmitAIQuizResponse{PointsAwarded: 40}, nil
		},
	}
	app := newQuizTestApp(svc, "user1")

	reqBody, _ := json.Marshal(dto.SubmitAIQuizRequest{Topic: "Optics", Score: 4, Total: 5})
	req := httptest.NewRequest("POST", "/ai/quiz/submit", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.SubmitAIQuizResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 40, body.PointsAwarded)
}
