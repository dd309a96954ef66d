package dto

import (
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
)

type CreateTransactionRequest struct {
	UserID string  `json:"user_id" validate:"required,uuid"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Type   string  `json:"type" validate:"required,oneof=DEPOSIT WITHDRAWAL"`
	Status string  `json:"status" validate:"required,oneof=PENDING APPROVED"`
	Notes  string  `json:"notes"`
}

type TransactionResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
	ExternalRef   string  `json:"external_ref,omitempty"`
	ProcessedBy   string  `json:"processed_by,omitempty"`
	Timestamp     string  `json:"timestamp"`
	Notes         string  `json:"notes,omitempty"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:            tx.ID.String(),
		UserID:        tx.UserID.String(),
		Amount:        tx.Amount,
		Type:          string(tx.Type),
		Status:        string(tx.Status),
		PaymentMethod: tx.PaymentMethod,
		ExternalRef:   tx.ExternalRef,
		Timestamp:     tx.Timestamp.Format(time.RFC3339),
		Notes:         tx.Notes,
	}
	if tx.ProcessedBy != nil {
		resp.ProcessedBy = tx.ProcessedBy.String()
	}
	return resp
}

func NewTransactionResponses(txs []*models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		responses[i] = NewTransactionResponse(tx)
	}
	return responses
}
