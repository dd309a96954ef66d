package service

import (
	"context"
	"testing"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSummaryAggregatesApprovedTotals(t *testing.T) {
	player := testPlayer("+549111")
	other := testPlayer("+549222")
	users := newFakeUserStore(player, other)
	txs := newFakeTransactionStore(
		&models.Transaction{ID: uuid.New(), UserID: player.ID, Amount: 1000, Type: models.TypeDeposit, Status: models.StatusApproved},
		&models.Transaction{ID: uuid.New(), UserID: player.ID, Amount: 500, Type: models.TypeDeposit, Status: models.StatusApproved},
		&models.Transaction{ID: uuid.New(), UserID: other.ID, Amount: 300, Type: models.TypeWithdrawal, Status: models.StatusApproved},
		&models.Transaction{ID: uuid.New(), UserID: other.ID, Amount: 900, Type: models.TypeDeposit, Status: models.StatusPending},
		&models.Transaction{ID: uuid.New(), UserID: other.ID, Amount: 400, Type: models.TypeDeposit, Status: models.StatusRejected},
	)
	svc := NewStatsService(txs, users, nil, 30*time.Second, zap.NewNop())

	stats, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1500.0, stats.TotalDeposits)
	assert.Equal(t, 300.0, stats.TotalWithdrawals)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 2, stats.UserCount)
}
