package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/config"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/logger"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

const denylistKeyPrefix = "auth:denylist:"

// AuthClaims carries the user identity inside the access token. The JTI is
// what the logout denylist keys on.
type AuthClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// AuthService manages registration, login and token lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, email, password, examGroup string) (*domain.User, []domain.Badge, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateJWT(ctx context.Context, tokenString string) (*AuthClaims, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type authServiceImpl struct {
	userRepo      repository.UserRepository
	attemptRepo   repository.AttemptRepository
	scheduleRepo  repository.ScheduleRepository
	postRepo      repository.PostRepository
	badgeRepo     repository.BadgeRepository
	interviewRepo repository.InterviewRepository
	badgeService  BadgeService
	txManager     domain.TransactionManager
	cache         domain.Cache
	authCfg       config.AuthConfig
}

func NewAuthService(
	userRepo repository.UserRepository,
	attemptRepo repository.AttemptRepository,
	scheduleRepo repository.ScheduleRepository,
	postRepo repository.PostRepository,
	badgeRepo repository.BadgeRepository,
	interviewRepo repository.InterviewRepository,
	badgeService BadgeService,
	txManager domain.TransactionManager,
	cache domain.Cache,
	authCfg config.AuthConfig,
) AuthService {
	return &authServiceImpl{
		userRepo:      userRepo,
		attemptRepo:   attemptRepo,
		scheduleRepo:  scheduleRepo,
		postRepo:      postRepo,
		badgeRepo:     badgeRepo,
		interviewRepo: interviewRepo,
		badgeService:  badgeService,
		txManager:     txManager,
		cache:         cache,
		authCfg:       authCfg,
	}
}

// Register creates the account and grants the registration badge. A taken
// username or email is a validation failure, not an internal error.
func (s *authServiceImpl) Register(ctx context.Context, username, email, password, examGroup string) (*domain.User, []domain.Badge, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	var verrs domain.ValidationErrors
	if username == "" {
		verrs = append(verrs, domain.NewMissingFieldError("username"))
	}
	if email == "" || !strings.Contains(email, "@") {
		verrs = append(verrs, domain.NewInvalidFormatError("email", email))
	}
	if len(password) < 6 {
		verrs = append(verrs, domain.NewInvalidFormatError("password", "too short"))
	}
	if !domain.IsValidExamGroup(examGroup) {
		verrs = append(verrs, domain.NewInvalidFormatError("exam_group", examGroup))
	}
	if len(verrs) > 0 {
		return nil, nil, verrs
	}

	if existing, err := s.userRepo.GetUserByUsername(ctx, username); err != nil {
		return nil, nil, domain.NewInternalError("failed to check username", err)
	} else if existing != nil {
		return nil, nil, domain.NewError(domain.CodeValidation, "username is already taken", nil)
	}
	if existing, err := s.userRepo.GetUserByEmail(ctx, email); err != nil {
		return nil, nil, domain.NewInternalError("failed to check email", err)
	} else if existing != nil {
		return nil, nil, domain.NewError(domain.CodeValidation, "email is already registered", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, domain.NewInternalError("failed to hash password", err)
	}

	user := &domain.User{
		ID:           util.NewULID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		ExamGroup:    examGroup,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, nil, domain.NewInternalError("failed to create user", err)
	}

	newBadges, err := s.badgeService.EvaluateBadges(ctx, user.ID, domain.TriggerRegistration)
	if err != nil {
		// The account exists; a failed badge grant is not worth failing
		// registration over.
		logger.Get().Warn("registration badge evaluation failed",
			zap.String("user_id", user.ID), zap.Error(err))
		newBadges = nil
	}

	return user, newBadges, nil
}

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(user.ID)
	if err != nil {
		return "", nil, domain.NewInternalError("failed to sign token", err)
	}
	return token, user, nil
}

func (s *authServiceImpl) generateAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        util.NewULID(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.authCfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.authCfg.JWTSecret))
}

// Logout denylists the token's JTI until its natural expiry. An already
// expired token logs out successfully; there is nothing left to revoke.
func (s *authServiceImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil
		}
		return ErrInvalidJWTToken
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, denylistKeyPrefix+claims.ID, "revoked", ttl); err != nil {
		return domain.NewInternalError("failed to denylist token", err)
	}
	return nil
}

func (s *authServiceImpl) parseClaims(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authCfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}

// ValidateJWT verifies signature, expiry and the revocation denylist.
func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*AuthClaims, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil, ErrInvalidJWTToken
	}

	if _, err := s.cache.Get(ctx, denylistKeyPrefix+claims.ID); err == nil {
		return nil, ErrTokenRevoked
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		// A cache outage fails closed for revocation checks.
		return nil, domain.NewInternalError("failed to check token denylist", err)
	}

	return claims, nil
}

// DeleteAccount removes the user and everything they own in one transaction.
func (s *authServiceImpl) DeleteAccount(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return domain.NewNotFoundError("user not found")
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.postRepo.DeletePostsByUser(txCtx, userID); err != nil {
			return err
		}
		if err := s.scheduleRepo.DeleteTasksByUser(txCtx, userID); err != nil {
			return err
		}
		if err := s.attemptRepo.DeleteAttemptsByUser(txCtx, userID); err != nil {
			return err
		}
		if err := s.interviewRepo.DeleteInterviewsByUser(txCtx, userID); err != nil {
			return err
		}
		if err := s.badgeRepo.DeleteGrantsByUser(txCtx, userID); err != nil {
			return err
		}
		return s.userRepo.DeleteUser(txCtx, userID)
	})
}
