package handler

import (
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/middleware"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PostHandler serves the exam-group community channels.
type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	post, newBadges, err := h.postService.CreatePost(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"post":       post,
		"new_badges": newBadges,
	})
}

// GetChannelPosts lists top-level posts in the caller's exam-group channel.
func (h *PostHandler) GetChannelPosts(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	posts, err := h.postService.GetChannelPosts(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

func (h *PostHandler) GetReplies(c *fiber.Ctx) error {
	replies, err := h.postService.GetReplies(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(replies)
}

// DeletePost removes the caller's own post together with its replies.
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	if err := h.postService.DeletePost(c.Context(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "post deleted"})
}
