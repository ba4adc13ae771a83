package service

import (
	"context"
	"fmt"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/config"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/extractor"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository"
)

// InterviewService drives the mock-interview bot and its evaluator.
type InterviewService interface {
	NextTurn(ctx context.Context, history []domain.ChatMessage) (string, error)
	// Evaluate scores the finished interview and persists the record.
	// Persistence is all-or-nothing with the evaluation itself: a failed
	// or unparseable evaluation stores nothing.
	Evaluate(ctx context.Context, userID string, history []domain.ChatMessage) (*dto.InterviewEvaluationResponse, error)
}

type interviewServiceImpl struct {
	interviewRepo repository.InterviewRepository
	textGen       domain.TextGenerator
	groqCfg       config.GroqConfig
}

func NewInterviewService(interviewRepo repository.InterviewRepository, textGen domain.TextGenerator, groqCfg config.GroqConfig) InterviewService {
	return &interviewServiceImpl{interviewRepo: interviewRepo, textGen: textGen, groqCfg: groqCfg}
}

// NextTurn sends the whole exchange so far and returns the interviewer's
// next line. An empty exchange is seeded with a fixed opener so the
// interviewer speaks first.
func (s *interviewServiceImpl) NextTurn(ctx context.Context, history []domain.ChatMessage) (string, error) {
	if len(history) == 0 {
		history = []domain.ChatMessage{{Role: domain.RoleUser, Content: "Start the interview."}}
	}

	messages := make([]domain.ChatMessage, 0, len(history)+1)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: interviewerSystemPrompt})
	messages = append(messages, history...)

	reply, err := s.textGen.Generate(ctx, domain.GenerateRequest{
		Messages:  messages,
		Model:     s.groqCfg.ModelInterview,
		MaxTokens: 300,
	})
	if err != nil {
		return "", err
	}
	return reply, nil
}

func (s *interviewServiceImpl) Evaluate(ctx context.Context, userID string, history []domain.ChatMessage) (*dto.InterviewEvaluationResponse, error) {
	// Too short to judge; checked before any collaborator call is made.
	if len(history) < domain.MinEvaluationExchange {
		return nil, domain.NewError(domain.CodeValidation,
			"the interview is too short to evaluate; answer a few questions first", nil)
	}

	transcript := domain.FlattenTranscript(history)

	raw, err := s.textGen.Generate(ctx, domain.GenerateRequest{
		Messages: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: evaluatorSystemPrompt},
			{Role: domain.RoleUser, Content: fmt.Sprintf("Please evaluate this interview transcript:\n\n%s", transcript)},
		},
		Model:     s.groqCfg.ModelEvaluation,
		MaxTokens: 500,
	})
	if err != nil {
		return nil, err
	}

	var eval domain.InterviewEvaluation
	required := []extractor.Field{
		{Name: "score_confidence", Kind: extractor.KindNumber},
		{Name: "feedback", Kind: extractor.KindList},
	}
	if err := extractor.ExtractInto(raw, required, &eval); err != nil {
		return nil, err
	}

	record := &domain.InterviewRecord{
		UserID:          userID,
		Topic:           eval.Topic,
		Transcript:      transcript,
		ScoreConfidence: eval.ScoreConfidence,
		ScoreClarity:    eval.ScoreClarity,
		Feedback:        eval.Feedback,
		Strengths:       eval.Strengths,
	}
	if err := s.interviewRepo.CreateInterview(ctx, record); err != nil {
		return nil, domain.NewInternalError("failed to store interview", err)
	}

	return &dto.InterviewEvaluationResponse{
		Topic:           eval.Topic,
		ScoreConfidence: eval.ScoreConfidence,
		ScoreClarity:    eval.ScoreClarity,
		Feedback:        eval.Feedback,
		Strengths:       eval.Strengths,
	}, nil
}
