package handler

import (
	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/middleware"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler serves the analytics surfaces built on quiz history.
type ProfileHandler struct {
	userService    service.UserService
	statsService   service.StatsService
	badgeService   service.BadgeService
	plannerService service.PlannerService
}

func NewProfileHandler(
	userService service.UserService,
	statsService service.StatsService,
	badgeService service.BadgeService,
	plannerService service.PlannerService,
) *ProfileHandler {
	return &ProfileHandler{
		userService:    userService,
		statsService:   statsService,
		badgeService:   badgeService,
		plannerService: plannerService,
	}
}

// GetProfile returns the full profile page payload. The optional filter
// query narrows the stats window; unknown values fall back to all-time.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	period := domain.ParsePeriod(c.Query("filter"))

	profile, err := h.userService.GetProfile(c.Context(), userID, period)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// GetDashboard returns the landing payload and applies streak decay.
func (h *ProfileHandler) GetDashboard(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	dashboard, err := h.userService.GetDashboard(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dashboard)
}

func (h *ProfileHandler) GetStats(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	period := domain.ParsePeriod(c.Query("filter"))

	stats, err := h.statsService.GetStats(c.Context(), userID, period)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *ProfileHandler) GetHeatmap(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	heatmap, err := h.statsService.GetHeatmap(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(heatmap)
}

func (h *ProfileHandler) GetRevisionPlan(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	plan, err := h.plannerService.GetRevisionPlan(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(plan)
}

func (h *ProfileHandler) ListBadges(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	earned, err := h.badgeService.ListEarnedBadges(c.Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]dto.EarnedBadgeResponse, 0, len(earned))
	for _, e := range earned {
		resp = append(resp, dto.EarnedBadgeResponse{
			BadgeResponse: dto.BadgeResponse{
				ID:          e.Badge.ID,
				Name:        e.Badge.Name,
				Description: e.Badge.Description,
				Icon:        e.Badge.Icon,
			},
			EarnedAt: e.EarnedAt,
		})
	}
	return c.JSON(resp)
}

func (h *ProfileHandler) ChangeExamGroup(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	var req dto.ChangeExamGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.userService.ChangeExamGroup(c.Context(), userID, req.ExamGroup); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "exam group updated"})
}
