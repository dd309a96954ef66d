package service

import (
	"context"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionService lists the movement log and records manual entries made
// by admins outside the receipt workflow.
type TransactionService struct {
	txs        TransactionStore
	users      UserStore
	settlement *SettlementService
	logger     *zap.Logger
}

func NewTransactionService(txs TransactionStore, users UserStore, settlement *SettlementService, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txs:        txs,
		users:      users,
		settlement: settlement,
		logger:     logger,
	}
}

func (s *TransactionService) List(ctx context.Context, status models.TransactionStatus, txType models.TransactionType) ([]*models.Transaction, error) {
	return s.txs.List(ctx, status, txType)
}

// Create records a manual transaction. APPROVED entries settle immediately
// through the same path as the receipt workflow; PENDING entries wait for
// an operator decision.
func (s *TransactionService) Create(ctx context.Context, operatorID, userID uuid.UUID, amount float64, txType models.TransactionType, status models.TransactionStatus, notes string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrMissingFields
	}
	if txType != models.TypeDeposit && txType != models.TypeWithdrawal {
		return nil, ErrMissingFields
	}
	if status != models.StatusPending && status != models.StatusApproved {
		return nil, ErrMissingFields
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, ErrUserNotFound
	}

	tx := &models.Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        amount,
		Type:          txType,
		Status:        status,
		PaymentMethod: "Manual",
		Timestamp:     time.Now(),
		Notes:         sanitizeUTF8(notes),
	}
	if status == models.StatusApproved {
		tx.ProcessedBy = &operatorID
		if err := s.settlement.RecordApproved(ctx, tx); err != nil {
			return nil, err
		}
		return tx, nil
	}

	if err := s.txs.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
