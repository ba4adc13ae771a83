package handler

import (
	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/middleware"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles account and session endpoints.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
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

// Register creates an account and logs the new user in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if _, _, err := h.authService.Register(c.Context(), req.Username, req.Email, req.Password, req.ExamGroup); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		AccessToken: token,
		User:        toUserResponse(user),
	})
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	token, user, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{
		AccessToken: token,
		User:        toUserResponse(user),
	})
}

// Logout revokes the presented token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(middleware.TokenKey).(string)
	if err := h.authService.Logout(c.Context(), token); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

// DeleteAccount removes the authenticated user and all their data.
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	if err := h.authService.DeleteAccount(c.Context(), userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "account deleted"})
}
