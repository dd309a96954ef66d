package handlers

import (
	"github.com/nubetechmdq-wq/crmcasino/internal/dto"
	"github.com/nubetechmdq-wq/crmcasino/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BroadcastHandler struct {
	broadcastService *service.BroadcastService
	logger           *zap.Logger
}

func NewBroadcastHandler(broadcastService *service.BroadcastService, logger *zap.Logger) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastService: broadcastService,
		logger:           logger,
	}
}

// CreateBroadcast godoc
// @Summary Send a broadcast campaign
// @Description Record a mass message to the selected recipients
// @Tags broadcasts
// @Accept json
// @Produce json
// @Param request body dto.CreateBroadcastRequest true "Broadcast request"
// @Security Bearer
// @Success 201 {object} dto.BroadcastResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/broadcasts [post]
func (h *BroadcastHandler) CreateBroadcast(c *fiber.Ctx) error {
	var req dto.CreateBroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	recipients := make([]uuid.UUID, 0, len(req.Recipients))
	for _, raw := range req.Recipients {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid recipient ID",
			})
		}
		recipients = append(recipients, id)
	}

	broadcast, err := h.broadcastService.Create(c.Context(), req.Message, recipients)
	if err != nil {
		switch err {
		case service.ErrEmptyBroadcastMessage:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Broadcast message is required",
			})
		case service.ErrNoRecipients:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "At least one recipient is required",
			})
		}
		h.logger.Error("Failed to create broadcast", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create broadcast",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewBroadcastResponse(broadcast))
}

// ListBroadcasts godoc
// @Summary List broadcast campaigns
// @Description List past broadcasts, newest first
// @Tags broadcasts
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.BroadcastResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/broadcasts [get]
func (h *BroadcastHandler) ListBroadcasts(c *fiber.Ctx) error {
	broadcasts, err := h.broadcastService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list broadcasts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list broadcasts",
		})
	}

	return c.JSON(dto.NewBroadcastResponses(broadcasts))
}
