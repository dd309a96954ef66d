package service

import (
	"context"
	"testing"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTransactionFixture(users *fakeUserStore, txs *fakeTransactionStore) *TransactionService {
	logger := zap.NewNop()
	settlement := NewSettlementService(txs, users, nil, logger)
	return NewTransactionService(txs, users, settlement, logger)
}

func TestManualApprovedDepositSettlesImmediately(t *testing.T) {
	player := testPlayer("+549111")
	users := newFakeUserStore(player)
	txs := newFakeTransactionStore()
	svc := newTransactionFixture(users, txs)
	operatorID := uuid.New()

	tx, err := svc.Create(context.Background(), operatorID, player.ID, 4000, models.TypeDeposit, models.StatusApproved, "carga manual")

	require.NoError(t, err)
	assert.Equal(t, "Manual", tx.PaymentMethod)
	require.NotNil(t, tx.ProcessedBy)
	assert.Equal(t, operatorID, *tx.ProcessedBy)
	assert.Equal(t, 4000.0, users.balanceOf(player.ID))
}

func TestManualPendingDepositWaits(t *testing.T) {
	player := testPlayer("+549111")
	users := newFakeUserStore(player)
	txs := newFakeTransactionStore()
	svc := newTransactionFixture(users, txs)

	tx, err := svc.Create(context.Background(), uuid.New(), player.ID, 4000, models.TypeDeposit, models.StatusPending, "")

	require.NoError(t, err)
	assert.Nil(t, tx.ProcessedBy)
	assert.Zero(t, users.balanceOf(player.ID))
	assert.Equal(t, models.StatusPending, txs.statusOf(tx.ID))
}

func TestManualTransactionValidation(t *testing.T) {
	player := testPlayer("+549111")
	svc := newTransactionFixture(newFakeUserStore(player), newFakeTransactionStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.New(), player.ID, 0, models.TypeDeposit, models.StatusApproved, "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(ctx, uuid.New(), player.ID, 100, "TRANSFER", models.StatusApproved, "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(ctx, uuid.New(), player.ID, 100, models.TypeDeposit, models.StatusRejected, "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(ctx, uuid.New(), uuid.New(), 100, models.TypeDeposit, models.StatusApproved, "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListFiltersByStatusAndType(t *testing.T) {
	player := testPlayer("+549111")
	txs := newFakeTransactionStore(
		&models.Transaction{ID: uuid.New(), UserID: player.ID, Amount: 100, Type: models.TypeDeposit, Status: models.StatusApproved},
		&models.Transaction{ID: uuid.New(), UserID: player.ID, Amount: 200, Type: models.TypeWithdrawal, Status: models.StatusApproved},
		&models.Transaction{ID: uuid.New(), UserID: player.ID, Amount: 300, Type: models.TypeDeposit, Status: models.StatusPending},
	)
	svc := newTransactionFixture(newFakeUserStore(player), txs)
	ctx := context.Background()

	all, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	approved, err := svc.List(ctx, models.StatusApproved, "")
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	pendingDeposits, err := svc.List(ctx, models.StatusPending, models.TypeDeposit)
	require.NoError(t, err)
	require.Len(t, pendingDeposits, 1)
	assert.Equal(t, 300.0, pendingDeposits[0].Amount)
}
