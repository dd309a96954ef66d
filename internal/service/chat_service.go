package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const fallbackReply = "Lo siento, hubo un problema técnico con la IA. 🎰"

// historyWindow is how many recent messages feed the reply suggestion.
const historyWindow = 5

// ChatService manages the per-contact WhatsApp conversation log and drafts
// AI reply suggestions from the configured persona prompt.
type ChatService struct {
	msgs     MessageStore
	users    UserStore
	ai       AIClient
	settings *SettingsService
	logger   *zap.Logger
}

func NewChatService(msgs MessageStore, users UserStore, ai AIClient, settings *SettingsService, logger *zap.Logger) *ChatService {
	return &ChatService{
		msgs:     msgs,
		users:    users,
		ai:       ai,
		settings: settings,
		logger:   logger,
	}
}

func (s *ChatService) History(ctx context.Context, phone string) ([]*models.Message, error) {
	return s.msgs.ListByPhone(ctx, phone)
}

// Send appends an outgoing message to the conversation log. Delivery is
// handled by the external WhatsApp infrastructure.
func (s *ChatService) Send(ctx context.Context, senderPhone, receiverPhone, text string, sentByAI bool) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text is empty")
	}

	msg := &models.Message{
		ID:            uuid.New(),
		SenderPhone:   senderPhone,
		ReceiverPhone: receiverPhone,
		Text:          sanitizeUTF8(text),
		Timestamp:     time.Now(),
		IsIncoming:    false,
		SentByAI:      sentByAI,
	}
	if err := s.msgs.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// SuggestReply drafts a reply for the player behind playerPhone using the
// persona prompt from settings, with the placeholder variables substituted.
// AI errors degrade to a canned apology rather than failing the request.
func (s *ChatService) SuggestReply(ctx context.Context, playerPhone, operatorName string) (string, error) {
	player, err := s.users.GetByPhone(ctx, playerPhone)
	if err != nil {
		return "", ErrUserNotFound
	}

	history, err := s.msgs.ListByPhone(ctx, playerPhone)
	if err != nil {
		return "", err
	}

	settings := s.settings.Get()
	persona := substitutePersona(settings, player, operatorName)
	chatContext := buildChatContext(history)

	reply, err := s.ai.SuggestReply(ctx, settings.WhatsApp.AIModel, persona, chatContext)
	if err != nil {
		s.logger.Warn("Reply suggestion failed", zap.String("phone", playerPhone), zap.Error(err))
		return fallbackReply, nil
	}
	return reply, nil
}

func substitutePersona(settings models.AppSettings, player *models.User, operatorName string) string {
	r := strings.NewReplacer(
		"{{nombre_jugador}}", player.Name,
		"{{saldo}}", strconv.FormatFloat(player.Balance, 'f', -1, 64),
		"{{titular}}", settings.Payment.HolderName,
		"{{alias}}", settings.Payment.Alias,
		"{{cajero}}", operatorName,
	)
	return r.Replace(settings.WhatsApp.AIPrompt)
}

func buildChatContext(history []*models.Message) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	lines := make([]string, 0, len(history))
	for _, m := range history {
		speaker := "Soporte"
		if m.IsIncoming {
			speaker = "Jugador"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, m.Text))
	}
	return strings.Join(lines, "\n")
}
