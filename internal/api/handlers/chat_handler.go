package handlers

import (
	"github.com/nubetechmdq-wq/crmcasino/internal/dto"
	"github.com/nubetechmdq-wq/crmcasino/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// GetHistory godoc
// @Summary Get chat history with a player
// @Description List the full conversation for a phone number, oldest first
// @Tags chats
// @Produce json
// @Param phone path string true "Player phone"
// @Security Bearer
// @Success 200 {array} dto.MessageResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/chats/{phone} [get]
func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	phone := c.Params("phone")

	msgs, err := h.chatService.History(c.Context(), phone)
	if err != nil {
		h.logger.Error("Failed to load chat history", zap.String("phone", phone), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load chat history",
		})
	}

	return c.JSON(dto.NewMessageResponses(msgs))
}

// SendMessage godoc
// @Summary Send a message to a player
// @Description Record an outgoing message in the conversation log
// @Tags chats
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message request"
// @Security Bearer
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/chats/send [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	senderPhone, _ := c.Locals("userPhone").(string)

	msg, err := h.chatService.Send(c.Context(), senderPhone, req.ReceiverPhone, req.Text, req.SentByAI)
	if err != nil {
		h.logger.Error("Failed to send message", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message text is required",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewMessageResponse(msg))
}

// SuggestReply godoc
// @Summary Draft an AI reply for a player
// @Description Generate a reply suggestion from the persona prompt and the recent conversation
// @Tags chats
// @Produce json
// @Param phone path string true "Player phone"
// @Security Bearer
// @Success 200 {object} dto.SuggestReplyResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/chats/{phone}/suggest [post]
func (h *ChatHandler) SuggestReply(c *fiber.Ctx) error {
	phone := c.Params("phone")
	operatorName, _ := c.Locals("userName").(string)

	reply, err := h.chatService.SuggestReply(c.Context(), phone, operatorName)
	if err != nil {
		if err == service.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No player matches that phone",
			})
		}
		h.logger.Error("Failed to suggest reply", zap.String("phone", phone), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to suggest reply",
		})
	}

	return c.JSON(dto.SuggestReplyResponse{Reply: reply})
}
