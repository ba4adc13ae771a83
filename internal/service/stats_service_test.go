package service

import (
	"context"
	"testing"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/config"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetStats_CollaboratorFailureSubstitutesMessage(t *testing.T) {
	attemptRepo := new(MockAttemptRepository)
	textGen := new(MockTextGenerator)
	svc := NewStatsService(attemptRepo, textGen, config.GroqConfig{ModelFeedback: "llama-3.1-8b-instant"})

	attempts := []domain.Attempt{
		{ID: "a1", UserID: "user1", QuizID: "q1", QuizTitle: "Algebra", Subject: "Math", Score: 3, Total: 10, CompletedAt: time.Now()},
	}
	attemptRepo.On("ListAttemptsByUser", mock.Anything, "user1").Return(attempts, nil)
	textGen.On("Generate", mock.Anything, mock.Anything).
		Return("", domain.NewCollaboratorError("text generation failed", domain.ErrGenRateLimited))

	resp, err := svc.GetStats(context.Background(), "user1", domain.PeriodAll)
	require.NoError(t, err)

	// Statistics survive a coach outage; only the feedback degrades.
	assert.Equal(t, 30, resp.OverallAverage)
	assert.Contains(t, resp.CoachFeedback, "rate limit")
}

func TestGetStats_FeedbackFromCollaborator(t *testing.T) {
	attemptRepo := new(MockAttemptRepository)
	textGen := new(MockTextGenerator)
	svc := NewStatsService(attemptRepo, textGen, config.GroqConfig{ModelFeedback: "llama-3.1-8b-instant"})

	attemptRepo.On("ListAttemptsByUser", mock.Anything, "user1").Return([]domain.Attempt{}, nil)
	textGen.On("Generate", mock.Anything, mock.MatchedBy(func(req domain.GenerateRequest) bool {
		return req.Model == "llama-3.1-8b-instant"
	})).Return("Keep it up!", nil)

	resp, err := svc.GetStats(context.Background(), "user1", domain.PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, "Keep it up!", resp.CoachFeedback)
	assert.Equal(t, "N/A", resp.WeakestSubject)
}

func TestGetHeatmap_OnlyAITopics(t *testing.T) {
	attemptRepo := new(MockAttemptRepository)
	textGen := new(MockTextGenerator)
	svc := NewStatsService(attemptRepo, textGen, config.GroqConfig{})

	now := time.Now()
	attempts := []domain.Attempt{
		{ID: "a1", UserID: "user1", AITopic: "Optics", Score: 9, Total: 10, CompletedAt: now},
		{ID: "a2", UserID: "user1", QuizID: "q1", Subject: "Math", Score: 1, Total: 10, CompletedAt: now},
	}
	attemptRepo.On("ListAttemptsByUser", mock.Anything, "user1").Return(attempts, nil)

	heatmap, err := svc.GetHeatmap(context.Background(), "user1")
	require.NoError(t, err)
	require.Len(t, heatmap, 1)
	assert.Equal(t, "Optics", heatmap[0].Topic)
	assert.Equal(t, 90, heatmap[0].Confidence)
}
