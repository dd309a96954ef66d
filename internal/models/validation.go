package models

// ValidationResult is the outcome of analyzing a receipt image. It is
// ephemeral: produced by the AI collaborator, optionally enriched with the
// payment-gateway cross-check, consumed once by the operator and discarded.
type ValidationResult struct {
	IsValid       bool    `json:"isValid"`
	Amount        float64 `json:"amount,omitempty"`
	TransactionID string  `json:"transactionId,omitempty"`
	SenderName    string  `json:"senderName,omitempty"`
	Date          string  `json:"date,omitempty"`
	Confidence    float64 `json:"confidence"`
	Error         string  `json:"error,omitempty"`
	APIVerified   bool    `json:"apiVerified"`
}
