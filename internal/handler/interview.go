package handler

import (
	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/middleware"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/service"

	"github.com/gofiber/fiber/v2"
)

// InterviewHandler drives the mock-interview conversation.
type InterviewHandler struct {
	interviewService service.InterviewService
}

func NewInterviewHandler(interviewService service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

func toChatMessages(history []dto.ChatMessageDTO) []domain.ChatMessage {
	messages := make([]domain.ChatMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, domain.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return messages
}

// NextTurn produces the interviewer's next question for the exchange so far.
func (h *InterviewHandler) NextTurn(c *fiber.Ctx) error {
	var req dto.InterviewTurnRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	reply, err := h.interviewService.NextTurn(c.Context(), toChatMessages(req.History))
	if err != nil {
		return err
	}
	return c.JSON(dto.InterviewTurnResponse{Reply: reply})
}

// Evaluate scores the finished interview and stores the record.
func (h *InterviewHandler) Evaluate(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	var req dto.InterviewEvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	evaluation, err := h.interviewService.Evaluate(c.Context(), userID, toChatMessages(req.History))
	if err != nil {
		return err
	}
	return c.JSON(evaluation)
}
