package service

import (
	"context"
	"testing"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	userRepo      *MockUserRepository
	attemptRepo   *MockAttemptRepository
	scheduleRepo  *MockScheduleRepository
	interviewRepo *MockInterviewRepository
	badgeService  *MockBadgeService
	statsService  *MockStatsService
	svc           UserService
}

func newUserFixture() *userFixture {
	f := &userFixture{
		userRepo:      new(MockUserRepository),
		attemptRepo:   new(MockAttemptRepository),
		scheduleRepo:  new(MockScheduleRepository),
		interviewRepo: new(MockInterviewRepository),
		badgeService:  new(MockBadgeService),
		statsService:  new(MockStatsService),
	}
	f.svc = NewUserService(f.userRepo, f.attemptRepo, f.scheduleRepo, f.interviewRepo, f.badgeService, f.statsService)
	return f
}

func TestGetDashboard_StaleStreakDecaysAndPersists(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	staleDate := time.Now().AddDate(0, 0, -5).Format(domain.DateLayout)
	f.userRepo.On("GetUserByID", ctx, "user1").
		Return(&domain.User{ID: "user1", Username: "asha", CurrentStreak: 7, LastActivityDate: staleDate}, nil)
	f.userRepo.On("UpdateActivity", ctx, "user1", mock.MatchedBy(func(s domain.ActivityState) bool {
		return s.Streak == 0 && s.LastActivityDate == staleDate
	})).Return(nil)
	f.scheduleRepo.On("ListTasksByUser", mock.Anything, "user1").Return([]domain.ScheduleTask{}, nil)
	f.attemptRepo.On("ListAttemptsByUser", mock.Anything, "user1").Return([]domain.Attempt{}, nil)
	f.statsService.On("CoachFeedbackForTrend", mock.Anything, "user1").Return("Keep going!")

	resp, err := f.svc.GetDashboard(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.User.CurrentStreak)
	assert.Equal(t, "Keep going!", resp.CoachFeedback)
	f.userRepo.AssertExpectations(t)
}

func TestGetDashboard_ActiveStreakUntouched(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	today := time.Now().Format(domain.DateLayout)
	f.userRepo.On("GetUserByID", ctx, "user1").
		Return(&domain.User{ID: "user1", CurrentStreak: 4, LastActivityDate: today}, nil)
	f.scheduleRepo.On("ListTasksByUser", mock.Anything, "user1").Return([]domain.ScheduleTask{}, nil)
	f.attemptRepo.On("ListAttemptsByUser", mock.Anything, "user1").Return([]domain.Attempt{}, nil)
	f.statsService.On("CoachFeedbackForTrend", mock.Anything, "user1").Return("Nice streak!")

	resp, err := f.svc.GetDashboard(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 4, resp.User.CurrentStreak)
	f.userRepo.AssertNotCalled(t, "UpdateActivity")
}

func TestGetDashboard_TodayTasksAndProgress(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()
	now := time.Now()

	today := now.Format(domain.DateLayout)
	f.userRepo.On("GetUserByID", ctx, "user1").
		Return(&domain.User{ID: "user1", CurrentStreak: 2, LastActivityDate: today}, nil)
	f.scheduleRepo.On("ListTasksByUser", mock.Anything, "user1").Return([]domain.ScheduleTask{
		{ID: "t1", Title: "Revise optics", StartTime: now, IsComplete: true},
		{ID: "t2", Title: "Mock test", StartTime: now.Add(2 * time.Hour), IsComplete: false},
		{ID: "t3", Title: "Old task", StartTime: now.AddDate(0, 0, -3), IsComplete: true},
	}, nil)
	f.attemptRepo.On("ListAttemptsByUser", mock.Anything, "user1").Return([]domain.Attempt{
		{ID: "a1", QuizID: "q1", QuizTitle: "Physics Quiz 1", Subject: "Physics", Score: 2, Total: 4, CompletedAt: now.Add(-time.Hour)},
		{ID: "a2", AITopic: "Thermodynamics", Score: 3, Total: 3, CompletedAt: now},
	}, nil)
	f.statsService.On("CoachFeedbackForTrend", mock.Anything, "user1").Return("Solid upward trend.")

	resp, err := f.svc.GetDashboard(ctx, "user1")
	require.NoError(t, err)

	// Only today's tasks count toward progress; the stale task is excluded.
	require.Len(t, resp.TodayTasks, 2)
	assert.Equal(t, 50, resp.ProgressPercent)

	assert.Equal(t, 2, resp.TotalAttempts)
	assert.Equal(t, "Solid upward trend.", resp.CoachFeedback)
	assert.NotEmpty(t, resp.TrendLabels)
}

func TestGetProfile_AssemblesAllSections(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	f.userRepo.On("GetUserByID", ctx, "user1").
		Return(&domain.User{ID: "user1", Username: "asha", ExamGroup: "NEET", Points: 120}, nil)
	f.statsService.On("GetStats", mock.Anything, "user1", domain.PeriodWeek).
		Return(&dto.StatsResponse{Period: "week", OverallAverage: 55}, nil)
	f.statsService.On("GetHeatmap", mock.Anything, "user1").
		Return([]dto.HeatmapEntryResponse{{Topic: "Optics", Confidence: 40}}, nil)
	f.badgeService.On("ListEarnedBadges", mock.Anything, "user1").
		Return([]domain.EarnedBadge{{Badge: domain.Badge{ID: "b1", Name: domain.BadgeFirstSteps}, EarnedAt: time.Now()}}, nil)
	f.interviewRepo.On("ListInterviewsByUser", mock.Anything, "user1").
		Return([]domain.InterviewRecord{{ID: "i1", Topic: "UPSC", ScoreConfidence: 70}}, nil)

	resp, err := f.svc.GetProfile(ctx, "user1", domain.PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, "asha", resp.User.Username)
	assert.Equal(t, 55, resp.Stats.OverallAverage)
	require.Len(t, resp.Badges, 1)
	require.Len(t, resp.Heatmap, 1)
	require.Len(t, resp.Interviews, 1)
	assert.Equal(t, "UPSC", resp.Interviews[0].Topic)
}

func TestChangeExamGroup_RejectsUnknownGroup(t *testing.T) {
	f := newUserFixture()

	err := f.svc.ChangeExamGroup(context.Background(), "user1", "Astrology")
	require.Error(t, err)
	var verrs domain.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	f.userRepo.AssertNotCalled(t, "UpdateExamGroup")
}
