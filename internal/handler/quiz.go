package handler

import (
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/middleware"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler serves the static quiz catalog and records attempts.
type QuizHandler struct {
	quizService service.QuizService
}

func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.quizService.ListQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.quizService.GetQuiz(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.quizService.SubmitQuiz(c.Context(), userID, c.Params("id"), req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// SubmitAIQuiz records a client-graded AI quiz attempt.
func (h *QuizHandler) SubmitAIQuiz(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	var req dto.SubmitAIQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.quizService.SubmitAIQuiz(c.Context(), userID, req.Topic, req.Score, req.Total)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
