package service

import (
	"context"
	"strings"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BroadcastService records bulk-message intents. Actual WhatsApp delivery
// is external; a broadcast row only states what was queued and for how many
// recipients.
type BroadcastService struct {
	broadcasts BroadcastStore
	logger     *zap.Logger
}

func NewBroadcastService(broadcasts BroadcastStore, logger *zap.Logger) *BroadcastService {
	return &BroadcastService{
		broadcasts: broadcasts,
		logger:     logger,
	}
}

// Create validates and records a broadcast. Empty input is rejected before
// anything is persisted.
func (s *BroadcastService) Create(ctx context.Context, text string, recipients []uuid.UUID) (*models.Broadcast, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyBroadcastMessage
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	b := &models.Broadcast{
		ID:             uuid.New(),
		MessageText:    sanitizeUTF8(text),
		RecipientCount: len(recipients),
		Status:         models.BroadcastStatusSent,
		CreatedAt:      time.Now(),
	}
	if err := s.broadcasts.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("Broadcast recorded",
		zap.String("broadcast_id", b.ID.String()),
		zap.Int("recipients", b.RecipientCount),
	)
	return b, nil
}

func (s *BroadcastService) List(ctx context.Context) ([]*models.Broadcast, error) {
	return s.broadcasts.List(ctx)
}
