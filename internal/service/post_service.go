package service

import (
	"context"
	"strings"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/logger"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository"

	"go.uber.org/zap"
)

// PostService runs the community forum. Each exam group is its own channel;
// users read and write the channel of their own group.
type PostService interface {
	CreatePost(ctx context.Context, userID string, req dto.CreatePostRequest) (*dto.PostResponse, []dto.BadgeResponse, error)
	GetChannelPosts(ctx context.Context, userID string) (*dto.ChannelPostsResponse, error)
	GetReplies(ctx context.Context, postID string) ([]dto.PostResponse, error)
	// DeletePost removes the caller's own post and its replies.
	DeletePost(ctx context.Context, userID, postID string) error
}

type postServiceImpl struct {
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	badgeService BadgeService
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	badgeService BadgeService,
) PostService {
	return &postServiceImpl{postRepo: postRepo, userRepo: userRepo, badgeService: badgeService}
}

func toPostResponse(p *domain.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:        p.ID,
		Username:  p.Username,
		Content:   p.Content,
		MediaURL:  p.MediaURL,
		CreatedAt: p.CreatedAt,
	}
}

// CreatePost writes to the author's exam-group channel. A user's first
// top-level post earns the community badge; replies do not count.
func (s *postServiceImpl) CreatePost(ctx context.Context, userID string, req dto.CreatePostRequest) (*dto.PostResponse, []dto.BadgeResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, nil, domain.ValidationErrors{domain.NewMissingFieldError("content")}
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, nil, domain.NewNotFoundError("user not found")
	}

	post := &domain.Post{
		UserID:       userID,
		Username:     user.Username,
		ExamGroup:    user.ExamGroup,
		Channel:      user.ExamGroup,
		Content:      content,
		MediaURL:     strings.TrimSpace(req.MediaURL),
		ParentPostID: req.ParentPostID,
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, nil, domain.NewInternalError("failed to create post", err)
	}

	var newBadges []dto.BadgeResponse
	if post.ParentPostID == "" {
		granted, err := s.badgeService.EvaluateBadges(ctx, userID, domain.TriggerFirstPost)
		if err != nil {
			logger.Get().Warn("post badge evaluation failed", zap.String("user_id", userID), zap.Error(err))
		} else {
			newBadges = toBadgeResponses(granted)
		}
	}

	resp := toPostResponse(post)
	return &resp, newBadges, nil
}

func (s *postServiceImpl) GetChannelPosts(ctx context.Context, userID string) (*dto.ChannelPostsResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	posts, err := s.postRepo.ListChannelPosts(ctx, user.ExamGroup)
	if err != nil {
		return nil, domain.NewInternalError("failed to list posts", err)
	}

	resp := &dto.ChannelPostsResponse{
		Channel: user.ExamGroup,
		Posts:   make([]dto.PostResponse, 0, len(posts)),
	}
	for i := range posts {
		resp.Posts = append(resp.Posts, toPostResponse(&posts[i]))
	}
	return resp, nil
}

func (s *postServiceImpl) GetReplies(ctx context.Context, postID string) ([]dto.PostResponse, error) {
	replies, err := s.postRepo.ListReplies(ctx, postID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list replies", err)
	}

	out := make([]dto.PostResponse, 0, len(replies))
	for i := range replies {
		out = append(out, toPostResponse(&replies[i]))
	}
	return out, nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID string) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return domain.NewInternalError("failed to look up post", err)
	}
	if post == nil {
		return domain.NewNotFoundError("post not found")
	}
	if post.UserID != userID {
		return domain.NewPermissionDeniedError("post belongs to another user")
	}

	if err := s.postRepo.DeletePostTree(ctx, postID); err != nil {
		if domain.IsCode(err, domain.CodeNotFound) {
			return err
		}
		return domain.NewInternalError("failed to delete post", err)
	}
	return nil
}
