package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusApproved TransactionStatus = "APPROVED"
	StatusRejected TransactionStatus = "REJECTED"
)

type TransactionType string

const (
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
)

// Transaction records a deposit or withdrawal. Status transitions are
// one-way: PENDING is initial, APPROVED and REJECTED are terminal.
// ProcessedBy is set when an operator resolves the transaction.
type Transaction struct {
	ID            uuid.UUID         `db:"id"`
	UserID        uuid.UUID         `db:"user_id"`
	Amount        float64           `db:"amount"`
	Type          TransactionType   `db:"type"`
	Status        TransactionStatus `db:"status"`
	PaymentMethod string            `db:"payment_method"`
	ExternalRef   string            `db:"external_ref"`
	ProcessedBy   *uuid.UUID        `db:"processed_by"`
	Timestamp     time.Time         `db:"timestamp"`
	Notes         string            `db:"notes"`
}

// SignedAmount is the balance delta this transaction applies on approval:
// deposits add, withdrawals subtract.
func (t *Transaction) SignedAmount() float64 {
	if t.Type == TypeWithdrawal {
		return -t.Amount
	}
	return t.Amount
}
