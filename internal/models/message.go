package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry in the append-only WhatsApp conversation log.
type Message struct {
	ID            uuid.UUID `db:"id"`
	SenderPhone   string    `db:"sender_phone"`
	ReceiverPhone string    `db:"receiver_phone"`
	Text          string    `db:"text"`
	Timestamp     time.Time `db:"timestamp"`
	IsIncoming    bool      `db:"is_incoming"`
	SentByAI      bool      `db:"sent_by_ai"`
}
