package service

import (
	"context"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/logger"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// UserService serves the profile and dashboard views and account settings.
type UserService interface {
	GetProfile(ctx context.Context, userID string, period domain.Period) (*dto.ProfileResponse, error)
	GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
	ChangeExamGroup(ctx context.Context, userID, examGroup string) error
}

type userServiceImpl struct {
	userRepo      repository.UserRepository
	attemptRepo   repository.AttemptRepository
	scheduleRepo  repository.ScheduleRepository
	interviewRepo repository.InterviewRepository
	badgeService  BadgeService
	statsService  StatsService
}

func NewUserService(
	userRepo repository.UserRepository,
	attemptRepo repository.AttemptRepository,
	scheduleRepo repository.ScheduleRepository,
	interviewRepo repository.InterviewRepository,
	badgeService BadgeService,
	statsService StatsService,
) UserService {
	return &userServiceImpl{
		userRepo:      userRepo,
		attemptRepo:   attemptRepo,
		scheduleRepo:  scheduleRepo,
		interviewRepo: interviewRepo,
		badgeService:  badgeService,
		statsService:  statsService,
	}
}

func toUserResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		ExamGroup:     u.ExamGroup,
		Points:        u.Points,
		CurrentStreak: u.CurrentStreak,
	}
}

// GetProfile assembles the full profile page: identity, statistics, earned
// badges, the confidence heatmap and past interviews. The independent reads
// run concurrently.
func (s *userServiceImpl) GetProfile(ctx context.Context, userID string, period domain.Period) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	var (
		stats      *dto.StatsResponse
		heatmap    []dto.HeatmapEntryResponse
		badges     []domain.EarnedBadge
		interviews []domain.InterviewRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.statsService.GetStats(gCtx, userID, period)
		return err
	})
	g.Go(func() error {
		var err error
		heatmap, err = s.statsService.GetHeatmap(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		badges, err = s.badgeService.ListEarnedBadges(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		interviews, err = s.interviewRepo.ListInterviewsByUser(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to assemble profile", err)
	}

	resp := &dto.ProfileResponse{
		User:    toUserResponse(user),
		Stats:   *stats,
		Heatmap: heatmap,
	}
	for _, b := range badges {
		resp.Badges = append(resp.Badges, dto.EarnedBadgeResponse{
			BadgeResponse: dto.BadgeResponse{ID: b.ID, Name: b.Name, Description: b.Description, Icon: b.Icon},
			EarnedAt:      b.EarnedAt,
		})
	}
	for _, rec := range interviews {
		resp.Interviews = append(resp.Interviews, dto.InterviewRecordResponse{
			ID:              rec.ID,
			Topic:           rec.Topic,
			ScoreConfidence: rec.ScoreConfidence,
			ScoreClarity:    rec.ScoreClarity,
			Feedback:        rec.Feedback,
			Strengths:       rec.Strengths,
			CompletedAt:     rec.CompletedAt,
		})
	}
	return resp, nil
}

// GetDashboard returns the landing view. Viewing the dashboard observes the
// streak: a streak already broken by inactivity collapses to zero here, and
// the decay is persisted so every later view agrees.
func (s *userServiceImpl) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	now := time.Now()

	state := domain.ActivityState{Streak: user.CurrentStreak, LastActivityDate: user.LastActivityDate}
	observed := domain.ObserveStreak(state, now)
	if observed.Streak != state.Streak {
		if err := s.userRepo.UpdateActivity(ctx, userID, observed); err != nil {
			// The next dashboard view retries the decay.
			logger.Get().Warn("failed to persist streak decay", zap.String("user_id", userID), zap.Error(err))
		} else {
			user.CurrentStreak = observed.Streak
		}
	}

	var (
		tasks    []domain.ScheduleTask
		attempts []domain.Attempt
		feedback string
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.scheduleRepo.ListTasksByUser(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		attempts, err = s.attemptRepo.ListAttemptsByUser(gCtx, userID)
		return err
	})
	g.Go(func() error {
		feedback = s.statsService.CoachFeedbackForTrend(gCtx, userID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to assemble dashboard", err)
	}

	stats := domain.Aggregate(attempts, now, domain.PeriodAll)

	resp := &dto.DashboardResponse{
		User:           toUserResponse(user),
		TodayTasks:     []dto.TaskResponse{},
		TotalAttempts:  stats.TotalAttempts,
		OverallAverage: stats.OverallAverage,
		TrendLabels:    stats.TrendLabels,
		TrendData:      stats.TrendData,
		SubjectStats:   make(map[string]dto.SubjectStatResponse, len(stats.SubjectStats)),
		SubjectLabels:  stats.SubjectLabels,
		SubjectData:    stats.SubjectData,
		WeakestSubject: stats.WeakestSubject,
		CoachFeedback:  feedback,
	}
	for subject, st := range stats.SubjectStats {
		resp.SubjectStats[subject] = dto.SubjectStatResponse{Average: st.Average, Count: st.Count}
	}

	year, month, day := now.Date()
	completed := 0
	for i := range tasks {
		ty, tm, td := tasks[i].StartTime.Date()
		if ty != year || tm != month || td != day {
			continue
		}
		resp.TodayTasks = append(resp.TodayTasks, toTaskResponse(&tasks[i]))
		if tasks[i].IsComplete {
			completed++
		}
	}
	if len(resp.TodayTasks) > 0 {
		resp.ProgressPercent = completed * 100 / len(resp.TodayTasks)
	}

	return resp, nil
}

func (s *userServiceImpl) ChangeExamGroup(ctx context.Context, userID, examGroup string) error {
	if !domain.IsValidExamGroup(examGroup) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("exam_group", examGroup)}
	}
	if err := s.userRepo.UpdateExamGroup(ctx, userID, examGroup); err != nil {
		if domain.IsCode(err, domain.CodeNotFound) {
			return err
		}
		return domain.NewInternalError("failed to change exam group", err)
	}
	return nil
}
