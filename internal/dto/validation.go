package dto

import "github.com/nubetechmdq-wq/crmcasino/internal/models"

// ValidationResponse mirrors the ephemeral result of a receipt analysis.
type ValidationResponse struct {
	IsValid       bool    `json:"is_valid"`
	Amount        float64 `json:"amount,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	SenderName    string  `json:"sender_name,omitempty"`
	Date          string  `json:"date,omitempty"`
	Confidence    float64 `json:"confidence"`
	APIVerified   bool    `json:"api_verified"`
	Error         string  `json:"error,omitempty"`
}

func NewValidationResponse(result *models.ValidationResult) ValidationResponse {
	return ValidationResponse{
		IsValid:       result.IsValid,
		Amount:        result.Amount,
		TransactionID: result.TransactionID,
		SenderName:    result.SenderName,
		Date:          result.Date,
		Confidence:    result.Confidence,
		APIVerified:   result.APIVerified,
		Error:         result.Error,
	}
}

// ApproveReceiptRequest carries the operator's approval decision. The
// validation result travels back from the client because it is never
// persisted server-side. PendingTxID is set when the approval resolves an
// existing PENDING transaction instead of synthesizing a new one.
type ApproveReceiptRequest struct {
	TargetPhone   string  `json:"target_phone" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	TransactionID string  `json:"transaction_id"`
	APIVerified   bool    `json:"api_verified"`
	PendingTxID   string  `json:"pending_tx_id,omitempty" validate:"omitempty,uuid"`
}

type RejectReceiptRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,uuid"`
}
