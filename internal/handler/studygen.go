package handler

import (
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StudyGenHandler exposes the generative study tools.
type StudyGenHandler struct {
	studyGenService service.StudyGenService
}

func NewStudyGenHandler(studyGenService service.StudyGenService) *StudyGenHandler {
	return &StudyGenHandler{studyGenService: studyGenService}
}

// AnswerDoubt answers a free-form academic question.
func (h *StudyGenHandler) AnswerDoubt(c *fiber.Ctx) error {
	var req dto.DoubtRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	answer, err := h.studyGenService.AnswerDoubt(c.Context(), req.Question)
	if err != nil {
		return err
	}
	return c.JSON(dto.DoubtResponse{Answer: answer})
}

// GenerateNotes condenses pasted study material into bullet notes.
func (h *StudyGenHandler) GenerateNotes(c *fiber.Ctx) error {
	var req dto.NotesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	notes, err := h.studyGenService.GenerateNotes(c.Context(), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(dto.NotesResponse{Notes: notes})
}

// GenerateQuiz builds a multiple-choice quiz on a topic.
func (h *StudyGenHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	quiz, err := h.studyGenService.GenerateQuiz(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// GenerateFlashcards builds front/back flashcards on a topic.
func (h *StudyGenHandler) GenerateFlashcards(c *fiber.Ctx) error {
	var req dto.FlashcardsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	cards, err := h.studyGenService.GenerateFlashcards(c.Context(), req.Topic, req.NumCards)
	if err != nil {
		return err
	}
	return c.JSON(cards)
}

// GenerateDiagram renders a topic as Mermaid flowchart source.
func (h *StudyGenHandler) GenerateDiagram(c *fiber.Ctx) error {
	var req dto.DiagramRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	code, err := h.studyGenService.GenerateDiagram(c.Context(), req.Topic)
	if err != nil {
		return err
	}
	return c.JSON(dto.DiagramResponse{MermaidCode: code})
}
