package service

import (
	"context"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/logger"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository"

	"go.uber.org/zap"
)

// QuizService serves the curated quiz catalog and grades submissions.
type QuizService interface {
	ListQuizzes(ctx context.Context) ([]dto.QuizSummaryResponse, error)
	GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error)
	SubmitQuiz(ctx context.Context, userID, quizID string, answers map[string]string) (*dto.SubmitQuizResponse, error)
	SubmitAIQuiz(ctx context.Context, userID, topic string, score, total int) (*dto.SubmitAIQuizResponse, error)
}

type quizServiceImpl struct {
	quizRepo     repository.QuizRepository
	attemptRepo  repository.AttemptRepository
	userRepo     repository.UserRepository
	badgeService BadgeService
	txManager    domain.TransactionManager
}

func NewQuizService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	userRepo repository.UserRepository,
	badgeService BadgeService,
	txManager domain.TransactionManager,
) QuizService {
	return &quizServiceImpl{
		quizRepo:     quizRepo,
		attemptRepo:  attemptRepo,
		userRepo:     userRepo,
		badgeService: badgeService,
		txManager:    txManager,
	}
}

func (s *quizServiceImpl) ListQuizzes(ctx context.Context) ([]dto.QuizSummaryResponse, error) {
	quizzes, err := s.quizRepo.ListQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quizzes", err)
	}

	out := make([]dto.QuizSummaryResponse, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, dto.QuizSummaryResponse{ID: q.ID, Title: q.Title, Subject: q.Subject})
	}
	return out, nil
}

// GetQuiz returns the quiz with its questions. Correct answers are stripped;
// grading happens server-side only.
func (s *quizServiceImpl) GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("quiz not found")
	}

	questions, err := s.quizRepo.GetQuestions(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get questions", err)
	}

	resp := &dto.QuizDetailResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Subject:   quiz.Subject,
		Questions: make([]dto.QuestionResponse, 0, len(questions)),
	}
	for i := range questions {
		q := &questions[i]
		resp.Questions = append(resp.Questions, dto.QuestionResponse{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      q.Options(),
		})
	}
	return resp, nil
}

// SubmitQuiz grades the submission, credits points, records the attempt and
// evaluates quiz badges. The attempt and points move together or not at all.
func (s *quizServiceImpl) SubmitQuiz(ctx context.Context, userID, quizID string, answers map[string]string) (*dto.SubmitQuizResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("quiz not found")
	}

	questions, err := s.quizRepo.GetQuestions(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewError(domain.CodeValidation, "quiz has no questions", nil)
	}

	score, results := domain.GradeQuiz(questions, answers)
	points := score * domain.PointsPerCorrectAnswer

	attempt := &domain.Attempt{
		UserID:      userID,
		QuizID:      quizID,
		Score:       score,
		Total:       len(questions),
		CompletedAt: time.Now(),
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.attemptRepo.CreateAttempt(txCtx, attempt); err != nil {
			return err
		}
		if points > 0 {
			return s.userRepo.AddPoints(txCtx, userID, points)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to record attempt", err)
	}

	newBadges := s.evaluateQuizBadges(ctx, userID)

	resp := &dto.SubmitQuizResponse{
		Score:         score,
		Total:         len(questions),
		PointsAwarded: points,
		Results:       make([]dto.QuestionResultResponse, 0, len(results)),
		NewBadges:     newBadges,
	}
	for _, r := range results {
		resp.Results = append(resp.Results, dto.QuestionResultResponse{
			QuestionText:    r.QuestionText,
			SubmittedAnswer: r.SubmittedAnswer,
			CorrectAnswer:   r.CorrectAnswer,
			IsCorrect:       r.IsCorrect,
		})
	}
	return resp, nil
}

// SubmitAIQuiz records a completed AI-generated quiz. Grading happened
// client-side against the generated answer key, so only the tally arrives.
func (s *quizServiceImpl) SubmitAIQuiz(ctx context.Context, userID, topic string, score, total int) (*dto.SubmitAIQuizResponse, error) {
	if topic == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("topic")}
	}

	points := score * domain.PointsPerCorrectAnswer

	attempt := &domain.Attempt{
		UserID:      userID,
		AITopic:     topic,
		Score:       score,
		Total:       total,
		CompletedAt: time.Now(),
	}
	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.attemptRepo.CreateAttempt(txCtx, attempt); err != nil {
			return err
		}
		if points > 0 {
			return s.userRepo.AddPoints(txCtx, userID, points)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to record attempt", err)
	}

	return &dto.SubmitAIQuizResponse{
		PointsAwarded: points,
		NewBadges:     s.evaluateQuizBadges(ctx, userID),
	}, nil
}

// evaluateQuizBadges never fails the submission; a lost badge grant is
// recoverable on the next attempt.
func (s *quizServiceImpl) evaluateQuizBadges(ctx context.Context, userID string) []dto.BadgeResponse {
	granted, err := s.badgeService.EvaluateBadges(ctx, userID, domain.TriggerQuizSubmit)
	if err != nil {
		logger.Get().Warn("quiz badge evaluation failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	return toBadgeResponses(granted)
}

func toBadgeResponses(badges []domain.Badge) []dto.BadgeResponse {
	out := make([]dto.BadgeResponse, 0, len(badges))
	for _, b := range badges {
		out = append(out, dto.BadgeResponse{ID: b.ID, Name: b.Name, Description: b.Description, Icon: b.Icon})
	}
	return out
}
