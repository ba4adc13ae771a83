package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/config"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/logger"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository"

	"go.uber.org/zap"
)

// StatsService derives analytics views from attempt records. Nothing here
// is persisted; every response is recomputed from the attempts.
type StatsService interface {
	GetStats(ctx context.Context, userID string, period domain.Period) (*dto.StatsResponse, error)
	GetHeatmap(ctx context.Context, userID string) ([]dto.HeatmapEntryResponse, error)
	// CoachFeedbackForTrend produces dashboard coaching text from the
	// recent score trend. Collaborator failures degrade to an error
	// message in the text, never to a failed request.
	CoachFeedbackForTrend(ctx context.Context, userID string) string
}

type statsServiceImpl struct {
	attemptRepo repository.AttemptRepository
	textGen     domain.TextGenerator
	groqCfg     config.GroqConfig
}

func NewStatsService(attemptRepo repository.AttemptRepository, textGen domain.TextGenerator, groqCfg config.GroqConfig) StatsService {
	return &statsServiceImpl{attemptRepo: attemptRepo, textGen: textGen, groqCfg: groqCfg}
}

func (s *statsServiceImpl) GetStats(ctx context.Context, userID string, period domain.Period) (*dto.StatsResponse, error) {
	attempts, err := s.attemptRepo.ListAttemptsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load attempts", err)
	}

	stats := domain.Aggregate(attempts, time.Now(), period)

	resp := &dto.StatsResponse{
		Period:         string(period),
		TotalAttempts:  stats.TotalAttempts,
		OverallAverage: stats.OverallAverage,
		SubjectStats:   make(map[string]dto.SubjectStatResponse, len(stats.SubjectStats)),
		SubjectLabels:  stats.SubjectLabels,
		SubjectData:    stats.SubjectData,
		WeakestSubject: stats.WeakestSubject,
		TrendLabels:    stats.TrendLabels,
		TrendData:      stats.TrendData,
		CoachFeedback:  s.coachFeedback(ctx, stats.HistoryText()),
	}
	for subject, st := range stats.SubjectStats {
		resp.SubjectStats[subject] = dto.SubjectStatResponse{Average: st.Average, Count: st.Count}
	}
	for _, h := range stats.History {
		resp.History = append(resp.History, dto.HistoryEntryResponse{
			Name:        h.Name,
			Score:       h.Score,
			Total:       h.Total,
			CompletedAt: h.CompletedAt,
		})
	}
	return resp, nil
}

func (s *statsServiceImpl) GetHeatmap(ctx context.Context, userID string) ([]dto.HeatmapEntryResponse, error) {
	attempts, err := s.attemptRepo.ListAttemptsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load attempts", err)
	}

	heatmap := domain.ConfidenceHeatmap(attempts)
	out := make([]dto.HeatmapEntryResponse, 0, len(heatmap))
	for _, tc := range heatmap {
		out = append(out, dto.HeatmapEntryResponse{Topic: tc.Topic, Confidence: tc.Confidence})
	}
	return out, nil
}

func (s *statsServiceImpl) CoachFeedbackForTrend(ctx context.Context, userID string) string {
	attempts, err := s.attemptRepo.ListAttemptsByUser(ctx, userID)
	if err != nil {
		logger.Get().Warn("failed to load attempts for coach trend", zap.Error(err))
		return domain.CollaboratorErrorMessage(err)
	}
	stats := domain.Aggregate(attempts, time.Now(), domain.PeriodAll)
	return s.coachFeedback(ctx, stats.TrendText())
}

// coachFeedback asks the coach model for analysis of the given summary. On
// failure the user-facing error string takes the feedback's place so the
// surrounding view always renders.
func (s *statsServiceImpl) coachFeedback(ctx context.Context, summary string) string {
	reply, err := s.textGen.Generate(ctx, domain.GenerateRequest{
		Messages: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: coachSystemPrompt},
			{Role: domain.RoleUser, Content: fmt.Sprintf("Here is the student's quiz history:\n\n%s\n\nGive your analysis.", summary)},
		},
		Model:     s.groqCfg.ModelFeedback,
		MaxTokens: 250,
	})
	if err != nil {
		logger.Get().Warn("coach feedback generation failed", zap.Error(err))
		return fmt.Sprintf("AI Coach Error: %s", domain.CollaboratorErrorMessage(err))
	}
	return reply
}
