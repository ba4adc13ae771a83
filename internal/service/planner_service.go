package service

import (
	"context"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository"
)

// PlannerService builds the revision roulette: a randomized day-by-day plan
// over the user's weak topics.
type PlannerService interface {
	GetRevisionPlan(ctx context.Context, userID string) (*dto.RevisionPlanResponse, error)
}

type plannerServiceImpl struct {
	attemptRepo repository.AttemptRepository
	planner     *domain.RevisionPlanner
}

func NewPlannerService(attemptRepo repository.AttemptRepository, planner *domain.RevisionPlanner) PlannerService {
	if planner == nil {
		planner = domain.NewRevisionPlanner(nil)
	}
	return &plannerServiceImpl{attemptRepo: attemptRepo, planner: planner}
}

func (s *plannerServiceImpl) GetRevisionPlan(ctx context.Context, userID string) (*dto.RevisionPlanResponse, error) {
	attempts, err := s.attemptRepo.ListAttemptsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load attempts", err)
	}

	weak := domain.WeakTopics(domain.ConfidenceHeatmap(attempts))
	plan := s.planner.Plan(weak)

	resp := &dto.RevisionPlanResponse{
		Plan: make([]dto.RevisionPlanEntryResponse, 0, len(plan)),
	}
	if len(plan) == 0 {
		resp.Message = "No weak areas found. Great job! Keep taking AI quizzes to track your confidence."
		return resp, nil
	}
	for _, entry := range plan {
		resp.Plan = append(resp.Plan, dto.RevisionPlanEntryResponse{Day: entry.Day, Topic: entry.Topic})
	}
	return resp, nil
}
