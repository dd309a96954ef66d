package service

import (
	"context"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/pkg/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SettlementService moves transactions to their terminal status and applies
// approved amounts to user balances.
//
// Settlement is two separate datastore calls: the status write and the
// balance increment. They are not wrapped in a single atomic unit, and the
// PENDING check is read-then-write rather than a conditional update, so two
// operators approving the same transaction at once can both settle it. The
// balance increment itself is the datastore's atomic add. See DESIGN.md for
// why this is preserved as is.
type SettlementService struct {
	txs    TransactionStore
	users  UserStore
	cache  *cache.Cache
	logger *zap.Logger
}

func NewSettlementService(txs TransactionStore, users UserStore, c *cache.Cache, logger *zap.Logger) *SettlementService {
	return &SettlementService{
		txs:    txs,
		users:  users,
		cache:  c,
		logger: logger,
	}
}

// ApprovePending moves an existing PENDING transaction to APPROVED, reusing
// its recorded amount and type, then credits the owner's balance.
func (s *SettlementService) ApprovePending(ctx context.Context, txID, operatorID uuid.UUID) (*models.Transaction, error) {
	tx, err := s.txs.GetByID(ctx, txID)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	if tx.Status != models.StatusPending {
		return nil, ErrTransactionClosed
	}

	if err := s.txs.UpdateStatus(ctx, txID, models.StatusApproved, operatorID); err != nil {
		return nil, err
	}
	tx.Status = models.StatusApproved
	tx.ProcessedBy = &operatorID

	s.applyBalance(ctx, tx)
	return tx, nil
}

// RecordApproved inserts a transaction synthesized directly in APPROVED
// state (intake-time cross-validation) and credits the balance.
func (s *SettlementService) RecordApproved(ctx context.Context, tx *models.Transaction) error {
	if err := s.txs.Create(ctx, tx); err != nil {
		return err
	}

	if tx.Status == models.StatusApproved {
		s.applyBalance(ctx, tx)
	}
	return nil
}

// Reject moves a PENDING transaction to REJECTED. Balances are untouched.
func (s *SettlementService) Reject(ctx context.Context, txID, operatorID uuid.UUID) (*models.Transaction, error) {
	tx, err := s.txs.GetByID(ctx, txID)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	if tx.Status != models.StatusPending {
		return nil, ErrTransactionClosed
	}

	if err := s.txs.UpdateStatus(ctx, txID, models.StatusRejected, operatorID); err != nil {
		return nil, err
	}
	tx.Status = models.StatusRejected
	tx.ProcessedBy = &operatorID

	return tx, nil
}

// applyBalance is the second settlement call. A failure here leaves the
// transaction APPROVED with the balance unchanged; it is logged but not
// surfaced to the operator and there is no compensating write.
func (s *SettlementService) applyBalance(ctx context.Context, tx *models.Transaction) {
	if err := s.users.IncrementBalance(ctx, tx.UserID, tx.SignedAmount()); err != nil {
		s.logger.Error("Balance increment failed after status change",
			zap.String("transaction_id", tx.ID.String()),
			zap.String("user_id", tx.UserID.String()),
			zap.Float64("amount", tx.SignedAmount()),
			zap.Error(err),
		)
		return
	}

	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate stats cache", zap.Error(err))
	}

	s.logger.Info("Balance settled",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("user_id", tx.UserID.String()),
		zap.Float64("amount", tx.SignedAmount()),
	)
}
