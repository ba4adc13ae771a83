package handler

import (
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/middleware"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ScheduleHandler manages the personal study calendar.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (h *ScheduleHandler) CreateTask(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	task, err := h.scheduleService.CreateTask(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *ScheduleHandler) ListTasks(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	tasks, err := h.scheduleService.ListTasks(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(tasks)
}

// ToggleTask flips completion and reports the resulting streak.
func (h *ScheduleHandler) ToggleTask(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	result, err := h.scheduleService.ToggleTask(c.Context(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *ScheduleHandler) DeleteTask(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	if err := h.scheduleService.DeleteTask(c.Context(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "task deleted"})
}
