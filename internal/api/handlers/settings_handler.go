package handlers

import (
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/dto"
	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
	logger          *zap.Logger
}

func NewSettingsHandler(settingsService *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetSettings godoc
// @Summary Get application settings
// @Description Current payment account and WhatsApp/AI configuration
// @Tags settings
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/settings [get]
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings := h.settingsService.Get()
	return c.JSON(dto.NewSettingsResponse(&settings))
}

// UpdateSettings godoc
// @Summary Update application settings
// @Description Replace the payment account and WhatsApp/AI configuration
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings request"
// @Security Bearer
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/settings [put]
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	settings := &models.AppSettings{
		Payment:   req.Payment,
		WhatsApp:  req.WhatsApp,
		UpdatedAt: time.Now(),
	}
	if err := h.settingsService.Update(c.Context(), settings); err != nil {
		h.logger.Error("Failed to update settings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update settings",
		})
	}

	return c.JSON(dto.NewSettingsResponse(settings))
}

// TestAI godoc
// @Summary Test the AI connection
// @Description Ping the configured AI backend and report its status
// @Tags settings
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AIStatusResponse
// @Failure 503 {object} dto.AIStatusResponse
// @Router /api/v1/settings/test-ai [post]
func (h *SettingsHandler) TestAI(c *fiber.Ctx) error {
	if err := h.settingsService.TestAI(c.Context()); err != nil {
		h.logger.Warn("AI connectivity check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.AIStatusResponse{
			Status:  "OFFLINE",
			Message: err.Error(),
		})
	}

	return c.JSON(dto.AIStatusResponse{Status: "ONLINE"})
}
