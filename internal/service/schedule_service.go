package service

import (
	"context"
	"strings"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/logger"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository"

	"go.uber.org/zap"
)

// ScheduleService manages a user's study schedule. Completing a task is the
// activity event that feeds the streak tracker.
type ScheduleService interface {
	CreateTask(ctx context.Context, userID string, req dto.CreateTaskRequest) (*dto.TaskResponse, error)
	ListTasks(ctx context.Context, userID string) ([]dto.TaskResponse, error)
	ToggleTask(ctx context.Context, userID, taskID string) (*dto.ToggleTaskResponse, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}

type scheduleServiceImpl struct {
	scheduleRepo repository.ScheduleRepository
	userRepo     repository.UserRepository
	badgeService BadgeService
}

func NewScheduleService(
	scheduleRepo repository.ScheduleRepository,
	userRepo repository.UserRepository,
	badgeService BadgeService,
) ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		badgeService: badgeService,
	}
}

func toTaskResponse(t *domain.ScheduleTask) dto.TaskResponse {
	return dto.TaskResponse{
		ID:         t.ID,
		Title:      t.Title,
		StartTime:  t.StartTime,
		EndTime:    t.EndTime,
		IsComplete: t.IsComplete,
	}
}

func (s *scheduleServiceImpl) CreateTask(ctx context.Context, userID string, req dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	var verrs domain.ValidationErrors
	if strings.TrimSpace(req.Title) == "" {
		verrs = append(verrs, domain.NewMissingFieldError("title"))
	}
	if req.StartTime.IsZero() {
		verrs = append(verrs, domain.NewMissingFieldError("start"))
	}
	if req.EndTime != nil && !req.EndTime.After(req.StartTime) {
		verrs = append(verrs, domain.NewInvalidFormatError("end", "must be after start"))
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	task := &domain.ScheduleTask{
		UserID:    userID,
		Title:     strings.TrimSpace(req.Title),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.scheduleRepo.CreateTask(ctx, task); err != nil {
		return nil, domain.NewInternalError("failed to create task", err)
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

func (s *scheduleServiceImpl) ListTasks(ctx context.Context, userID string) ([]dto.TaskResponse, error) {
	tasks, err := s.scheduleRepo.ListTasksByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list tasks", err)
	}

	out := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskResponse(&tasks[i]))
	}
	return out, nil
}

// ToggleTask flips completion. The incomplete-to-complete transition is a
// qualifying streak activity and triggers streak badge evaluation;
// unchecking a task never rewinds the streak.
func (s *scheduleServiceImpl) ToggleTask(ctx context.Context, userID, taskID string) (*dto.ToggleTaskResponse, error) {
	task, err := s.scheduleRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get task", err)
	}
	if task == nil {
		return nil, domain.NewNotFoundError("schedule task not found")
	}
	if task.UserID != userID {
		return nil, domain.NewPermissionDeniedError("task belongs to another user")
	}

	task.IsComplete = !task.IsComplete
	if err := s.scheduleRepo.SetComplete(ctx, taskID, task.IsComplete); err != nil {
		return nil, domain.NewInternalError("failed to update task", err)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	resp := &dto.ToggleTaskResponse{
		Task:          toTaskResponse(task),
		CurrentStreak: user.CurrentStreak,
	}

	if task.IsComplete {
		state := domain.AdvanceStreak(domain.ActivityState{
			Streak:           user.CurrentStreak,
			LastActivityDate: user.LastActivityDate,
		}, time.Now())
		if err := s.userRepo.UpdateActivity(ctx, userID, state); err != nil {
			return nil, domain.NewInternalError("failed to update streak", err)
		}
		resp.CurrentStreak = state.Streak

		granted, err := s.badgeService.EvaluateBadges(ctx, userID, domain.TriggerTaskComplete)
		if err != nil {
			logger.Get().Warn("streak badge evaluation failed", zap.String("user_id", userID), zap.Error(err))
		} else {
			resp.NewBadges = toBadgeResponses(granted)
		}
	}

	return resp, nil
}

func (s *scheduleServiceImpl) DeleteTask(ctx context.Context, userID, taskID string) error {
	task, err := s.scheduleRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return domain.NewInternalError("failed to get task", err)
	}
	if task == nil {
		return domain.NewNotFoundError("schedule task not found")
	}
	if task.UserID != userID {
		return domain.NewPermissionDeniedError("task belongs to another user")
	}
	if err := s.scheduleRepo.DeleteTask(ctx, taskID); err != nil {
		return domain.NewInternalError("failed to delete task", err)
	}
	return nil
}
