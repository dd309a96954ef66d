package models

import (
	"time"

	"github.com/google/uuid"
)

type BroadcastStatus string

const (
	BroadcastStatusSent BroadcastStatus = "SENT"
)

// Broadcast records the intent to send a bulk WhatsApp message. Actual
// delivery is handled by external infrastructure.
type Broadcast struct {
	ID             uuid.UUID       `db:"id"`
	MessageText    string          `db:"message_text"`
	RecipientCount int             `db:"recipient_count"`
	Status         BroadcastStatus `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
}
