package handlers

import (
	"github.com/nubetechmdq-wq/crmcasino/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	statsService *service.StatsService
	logger       *zap.Logger
}

func NewDashboardHandler(statsService *service.StatsService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// GetStats godoc
// @Summary Dashboard summary
// @Description Totals for approved deposits and withdrawals, pending count and user count
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} map[string]string
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.statsService.Summary(c.Context())
	if err != nil {
		h.logger.Error("Failed to compute dashboard stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute dashboard stats",
		})
	}

	return c.JSON(stats)
}
