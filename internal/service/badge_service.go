package service

import (
	"context"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/logger"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository"

	"go.uber.org/zap"
)

// BadgeService evaluates the achievement rules after a triggering event and
// lists what a user has earned. Grants are idempotent; re-running a rule a
// user already satisfies changes nothing.
type BadgeService interface {
	EvaluateBadges(ctx context.Context, userID string, trigger domain.BadgeTrigger) ([]domain.Badge, error)
	ListEarnedBadges(ctx context.Context, userID string) ([]domain.EarnedBadge, error)
}

// badgeFacts is the snapshot of user state the rules are judged against.
type badgeFacts struct {
	attemptCount  int
	currentStreak int
	topLevelPosts int
}

// badgeRule connects a catalog badge to its earning condition.
type badgeRule struct {
	name      string
	triggers  []domain.BadgeTrigger
	satisfied func(f badgeFacts) bool
}

var badgeRules = []badgeRule{
	{
		name:      domain.BadgeFirstSteps,
		triggers:  []domain.BadgeTrigger{domain.TriggerRegistration},
		satisfied: func(badgeFacts) bool { return true },
	},
	{
		name:      domain.BadgeQuizTaker,
		triggers:  []domain.BadgeTrigger{domain.TriggerQuizSubmit},
		satisfied: func(f badgeFacts) bool { return f.attemptCount >= 1 },
	},
	{
		name:      domain.BadgeQuizMaster,
		triggers:  []domain.BadgeTrigger{domain.TriggerQuizSubmit},
		satisfied: func(f badgeFacts) bool { return f.attemptCount >= domain.QuizMasterAttempts },
	},
	{
		name:      domain.BadgeStreakStarter,
		triggers:  []domain.BadgeTrigger{domain.TriggerTaskComplete},
		satisfied: func(f badgeFacts) bool { return f.currentStreak >= domain.StreakStarterLength },
	},
	{
		name:      domain.BadgeCommunityPoster,
		triggers:  []domain.BadgeTrigger{domain.TriggerFirstPost},
		satisfied: func(f badgeFacts) bool { return f.topLevelPosts >= 1 },
	},
}

type badgeServiceImpl struct {
	badgeRepo   repository.BadgeRepository
	userRepo    repository.UserRepository
	attemptRepo repository.AttemptRepository
	postRepo    repository.PostRepository
}

func NewBadgeService(
	badgeRepo repository.BadgeRepository,
	userRepo repository.UserRepository,
	attemptRepo repository.AttemptRepository,
	postRepo repository.PostRepository,
) BadgeService {
	return &badgeServiceImpl{
		badgeRepo:   badgeRepo,
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		postRepo:    postRepo,
	}
}

// EvaluateBadges runs the rules bound to the trigger and returns the badges
// newly granted by this evaluation. Already-held badges are silently skipped
// by the grant's conflict handling.
func (s *badgeServiceImpl) EvaluateBadges(ctx context.Context, userID string, trigger domain.BadgeTrigger) ([]domain.Badge, error) {
	rules := rulesForTrigger(trigger)
	if len(rules) == 0 {
		return nil, nil
	}

	facts, err := s.gatherFacts(ctx, userID, trigger)
	if err != nil {
		return nil, err
	}

	var granted []domain.Badge
	for _, rule := range rules {
		if !rule.satisfied(facts) {
			continue
		}
		badge, err := s.badgeRepo.GetBadgeByName(ctx, rule.name)
		if err != nil {
			return granted, err
		}
		if badge == nil {
			// Catalog row missing means the seed migration did not run.
			logger.Get().Error("badge missing from catalog", zap.String("badge", rule.name))
			continue
		}
		isNew, err := s.badgeRepo.GrantBadge(ctx, userID, badge.ID)
		if err != nil {
			return granted, err
		}
		if isNew {
			granted = append(granted, *badge)
		}
	}
	return granted, nil
}

func rulesForTrigger(trigger domain.BadgeTrigger) []badgeRule {
	var matched []badgeRule
	for _, rule := range badgeRules {
		for _, t := range rule.triggers {
			if t == trigger {
				matched = append(matched, rule)
				break
			}
		}
	}
	return matched
}

// gatherFacts loads only the state the trigger's rules actually inspect.
func (s *badgeServiceImpl) gatherFacts(ctx context.Context, userID string, trigger domain.BadgeTrigger) (badgeFacts, error) {
	var facts badgeFacts

	switch trigger {
	case domain.TriggerQuizSubmit:
		count, err := s.attemptRepo.CountAttemptsByUser(ctx, userID)
		if err != nil {
			return facts, err
		}
		facts.attemptCount = count
	case domain.TriggerTaskComplete:
		user, err := s.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			return facts, err
		}
		if user != nil {
			facts.currentStreak = user.CurrentStreak
		}
	case domain.TriggerFirstPost:
		count, err := s.postRepo.CountTopLevelPostsByUser(ctx, userID)
		if err != nil {
			return facts, err
		}
		facts.topLevelPosts = count
	}
	return facts, nil
}

func (s *badgeServiceImpl) ListEarnedBadges(ctx context.Context, userID string) ([]domain.EarnedBadge, error) {
	return s.badgeRepo.ListEarnedBadges(ctx, userID)
}
