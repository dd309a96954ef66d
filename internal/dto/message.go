package dto

import (
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
)

type SendMessageRequest struct {
	ReceiverPhone string `json:"receiver_phone" validate:"required"`
	Text          string `json:"text" validate:"required"`
	SentByAI      bool   `json:"sent_by_ai"`
}

type SuggestReplyResponse struct {
	Reply string `json:"reply"`
}

type MessageResponse struct {
	ID            string `json:"id"`
	SenderPhone   string `json:"sender_phone"`
	ReceiverPhone string `json:"receiver_phone"`
	Text          string `json:"text"`
	Timestamp     string `json:"timestamp"`
	IsIncoming    bool   `json:"is_incoming"`
	SentByAI      bool   `json:"sent_by_ai"`
}

func NewMessageResponse(msg *models.Message) MessageResponse {
	return MessageResponse{
		ID:            msg.ID.String(),
		SenderPhone:   msg.SenderPhone,
		ReceiverPhone: msg.ReceiverPhone,
		Text:          msg.Text,
		Timestamp:     msg.Timestamp.Format(time.RFC3339),
		IsIncoming:    msg.IsIncoming,
		SentByAI:      msg.SentByAI,
	}
}

func NewMessageResponses(msgs []*models.Message) []MessageResponse {
	responses := make([]MessageResponse, len(msgs))
	for i, msg := range msgs {
		responses[i] = NewMessageResponse(msg)
	}
	return responses
}
