package dto

import (
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
)

type CreateBroadcastRequest struct {
	Message    string   `json:"message" validate:"required"`
	Recipients []string `json:"recipients" validate:"required,dive,uuid"`
}

type BroadcastResponse struct {
	ID             string `json:"id"`
	MessageText    string `json:"message_text"`
	RecipientCount int    `json:"recipient_count"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

func NewBroadcastResponse(b *models.Broadcast) BroadcastResponse {
	return BroadcastResponse{
		ID:             b.ID.String(),
		MessageText:    b.MessageText,
		RecipientCount: b.RecipientCount,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

func NewBroadcastResponses(broadcasts []*models.Broadcast) []BroadcastResponse {
	responses := make([]BroadcastResponse, len(broadcasts))
	for i, b := range broadcasts {
		responses[i] = NewBroadcastResponse(b)
	}
	return responses
}
