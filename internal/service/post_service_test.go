package service

import (
	"context"
	"testing"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPostFixture() (*MockPostRepository, *MockUserRepository, *MockBadgeService, PostService) {
	postRepo := new(MockPostRepository)
	userRepo := new(MockUserRepository)
	badgeService := new(MockBadgeService)
	svc := NewPostService(postRepo, userRepo, badgeService)
	return postRepo, userRepo, badgeService, svc
}

func TestCreatePost_WritesToOwnExamGroupChannel(t *testing.T) {
	postRepo, userRepo, badgeService, svc := newPostFixture()
	ctx := context.Background()

	userRepo.On("GetUserByID", ctx, "user1").
		Return(&domain.User{ID: "user1", Username: "asha", ExamGroup: "JEE"}, nil)
	postRepo.On("CreatePost", ctx, mock.MatchedBy(func(p *domain.Post) bool {
		return p.Channel == "JEE" && p.Content == "Anyone solved the rotation problem set?"
	})).Return(nil)
	badgeService.On("EvaluateBadges", ctx, "user1", domain.TriggerFirstPost).
		Return([]domain.Badge{{ID: "b4", Name: domain.BadgeCommunityPoster}}, nil)

	post, newBadges, err := svc.CreatePost(ctx, "user1", dto.CreatePostRequest{
		Content: "Anyone solved the rotation problem set?",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha", post.Username)
	require.Len(t, newBadges, 1)
	assert.Equal(t, domain.BadgeCommunityPoster, newBadges[0].Name)
}

func TestCreatePost_ReplyDoesNotTriggerBadge(t *testing.T) {
	postRepo, userRepo, badgeService, svc := newPostFixture()
	ctx := context.Background()

	userRepo.On("GetUserByID", ctx, "user1").
		Return(&domain.User{ID: "user1", Username: "asha", ExamGroup: "JEE"}, nil)
	postRepo.On("CreatePost", ctx, mock.Anything).Return(nil)

	_, newBadges, err := svc.CreatePost(ctx, "user1", dto.CreatePostRequest{
		Content:      "Yes, use the parallel axis theorem.",
		ParentPostID: "post1",
	})
	require.NoError(t, err)
	assert.Empty(t, newBadges)
	badgeService.AssertNotCalled(t, "EvaluateBadges")
}

func TestCreatePost_EmptyContentRejected(t *testing.T) {
	postRepo, _, _, svc := newPostFixture()

	_, _, err := svc.CreatePost(context.Background(), "user1", dto.CreatePostRequest{Content: "   "})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	postRepo.AssertNotCalled(t, "CreatePost")
}

func TestGetChannelPosts_UsesCallersExamGroup(t *testing.T) {
	postRepo, userRepo, _, svc := newPostFixture()
	ctx := context.Background()

	userRepo.On("GetUserByID", ctx, "user1").
		Return(&domain.User{ID: "user1", ExamGroup: "NEET"}, nil)
	postRepo.On("ListChannelPosts", ctx, "NEET").
		Return([]domain.Post{{ID: "p1", Username: "ravi", Content: "Mock test tomorrow"}}, nil)

	resp, err := svc.GetChannelPosts(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, "NEET", resp.Channel)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "ravi", resp.Posts[0].Username)
}

func TestDeletePost_OwnerDeletesTree(t *testing.T) {
	postRepo, _, _, svc := newPostFixture()
	ctx := context.Background()

	postRepo.On("GetPostByID", ctx, "p1").
		Return(&domain.Post{ID: "p1", UserID: "user1"}, nil)
	postRepo.On("DeletePostTree", ctx, "p1").Return(nil)

	require.NoError(t, svc.DeletePost(ctx, "user1", "p1"))
	postRepo.AssertExpectations(t)
}

func TestDeletePost_OtherUsersPostForbidden(t *testing.T) {
	postRepo, _, _, svc := newPostFixture()
	ctx := context.Background()

	postRepo.On("GetPostByID", ctx, "p1").
		Return(&domain.Post{ID: "p1", UserID: "someone-else"}, nil)

	err := svc.DeletePost(ctx, "user1", "p1")
	assert.True(t, domain.IsCode(err, domain.CodePermissionDenied))
	postRepo.AssertNotCalled(t, "DeletePostTree")
}

func TestDeletePost_MissingPost(t *testing.T) {
	postRepo, _, _, svc := newPostFixture()
	ctx := context.Background()

	postRepo.On("GetPostByID", ctx, "ghost").Return(nil, nil)

	err := svc.DeletePost(ctx, "user1", "ghost")
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))
}
