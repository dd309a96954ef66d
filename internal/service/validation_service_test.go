package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newValidationFixture(t *testing.T, ai *fakeAIClient, gateway *fakeGateway, users *fakeUserStore, txs *fakeTransactionStore) *ValidationService {
	t.Helper()
	logger := zap.NewNop()
	settings := NewSettingsService(&fakeSettingsStore{}, ai, logger)
	settlement := NewSettlementService(txs, users, nil, logger)
	return NewValidationService(ai, gateway, users, settlement, settings, logger)
}

func testPlayer(phone string) *models.User {
	return &models.User{
		ID:        uuid.New(),
		Phone:     phone,
		Name:      "Juan Pérez",
		Role:      models.RoleCashier,
		Status:    models.UserStatusActive,
		CreatedAt: time.Now(),
	}
}

func TestValidateFailsClosedOnAIError(t *testing.T) {
	ai := &fakeAIClient{err: errors.New("model overloaded")}
	gateway := &fakeGateway{verification: &PaymentVerification{Verified: true}}
	svc := newValidationFixture(t, ai, gateway, newFakeUserStore(), newFakeTransactionStore())

	result := svc.Validate(context.Background(), []byte("img"), "image/jpeg")

	assert.False(t, result.IsValid)
	assert.Zero(t, result.Confidence)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, 0, gateway.calls, "gateway must not be called for a failed extraction")
}

func TestValidateSkipsGatewayWithoutReference(t *testing.T) {
	ai := &fakeAIClient{result: &models.ValidationResult{
		IsValid:    true,
		Amount:     5000,
		Confidence: 0.9,
	}}
	gateway := &fakeGateway{verification: &PaymentVerification{Verified: true}}
	svc := newValidationFixture(t, ai, gateway, newFakeUserStore(), newFakeTransactionStore())

	result := svc.Validate(context.Background(), []byte("img"), "image/jpeg")

	assert.True(t, result.IsValid)
	assert.False(t, result.APIVerified)
	assert.Equal(t, 0, gateway.calls)
}

func TestValidateCrossChecksGateway(t *testing.T) {
	ai := &fakeAIClient{result: &models.ValidationResult{
		IsValid:       true,
		Amount:        5000,
		TransactionID: "123456789",
		Confidence:    0.95,
	}}
	gateway := &fakeGateway{verification: &PaymentVerification{Verified: true, Status: "approved"}}
	svc := newValidationFixture(t, ai, gateway, newFakeUserStore(), newFakeTransactionStore())

	result := svc.Validate(context.Background(), []byte("img"), "image/jpeg")

	assert.True(t, result.APIVerified)
	assert.Equal(t, 1, gateway.calls)
	assert.Equal(t, "123456789", gateway.lastRef)
	assert.Equal(t, 5000.0, gateway.lastAmount)
}

func TestValidateGatewayFailureLeavesUnverified(t *testing.T) {
	ai := &fakeAIClient{result: &models.ValidationResult{
		IsValid:       true,
		Amount:        5000,
		TransactionID: "123456789",
		Confidence:    0.95,
	}}
	gateway := &fakeGateway{err: errors.New("gateway timeout")}
	svc := newValidationFixture(t, ai, gateway, newFakeUserStore(), newFakeTransactionStore())

	result := svc.Validate(context.Background(), []byte("img"), "image/jpeg")

	assert.True(t, result.IsValid, "extraction stays valid when only the cross-check fails")
	assert.False(t, result.APIVerified)
	assert.Equal(t, 1, gateway.calls, "the cross-check is not retried")
}

func TestApproveSynthesizesVerifiedDeposit(t *testing.T) {
	player := testPlayer("+5491112345678")
	users := newFakeUserStore(player)
	txs := newFakeTransactionStore()
	svc := newValidationFixture(t, &fakeAIClient{}, &fakeGateway{}, users, txs)
	operatorID := uuid.New()

	result := &models.ValidationResult{IsValid: true, Amount: 5000, TransactionID: "123456789", APIVerified: true}
	tx, err := svc.Approve(context.Background(), operatorID, player.Phone, result, nil)

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, tx.Status)
	assert.Equal(t, models.TypeDeposit, tx.Type)
	assert.Equal(t, "Mercado Pago (Verified)", tx.PaymentMethod)
	assert.Equal(t, "VERIFICADO VÍA API MP", tx.Notes)
	assert.Equal(t, "123456789", tx.ExternalRef)
	require.NotNil(t, tx.ProcessedBy)
	assert.Equal(t, operatorID, *tx.ProcessedBy)
	assert.Equal(t, 5000.0, users.balanceOf(player.ID))
}

func TestApproveUnverifiedDepositTaggedAIOnly(t *testing.T) {
	player := testPlayer("+5491112345678")
	users := newFakeUserStore(player)
	svc := newValidationFixture(t, &fakeAIClient{}, &fakeGateway{}, users, newFakeTransactionStore())

	result := &models.ValidationResult{IsValid: true, Amount: 2500, APIVerified: false}
	tx, err := svc.Approve(context.Background(), uuid.New(), player.Phone, result, nil)

	require.NoError(t, err)
	assert.Equal(t, "VALIDADO SOLO POR IA", tx.Notes)
	assert.Equal(t, 2500.0, users.balanceOf(player.ID))
}

func TestApproveRequiresAmountAndPhone(t *testing.T) {
	svc := newValidationFixture(t, &fakeAIClient{}, &fakeGateway{}, newFakeUserStore(), newFakeTransactionStore())

	_, err := svc.Approve(context.Background(), uuid.New(), "", &models.ValidationResult{Amount: 100}, nil)
	assert.ErrorIs(t, err, ErrMissingApprovalData)

	_, err = svc.Approve(context.Background(), uuid.New(), "+549111", &models.ValidationResult{Amount: 0}, nil)
	assert.ErrorIs(t, err, ErrMissingApprovalData)

	_, err = svc.Approve(context.Background(), uuid.New(), "+549111", nil, nil)
	assert.ErrorIs(t, err, ErrMissingApprovalData)
}

func TestApproveUnknownPhone(t *testing.T) {
	svc := newValidationFixture(t, &fakeAIClient{}, &fakeGateway{}, newFakeUserStore(), newFakeTransactionStore())

	result := &models.ValidationResult{IsValid: true, Amount: 100}
	_, err := svc.Approve(context.Background(), uuid.New(), "+5499999", result, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestApproveMatchesPhoneBySubstring(t *testing.T) {
	player := testPlayer("+5491112345678")
	users := newFakeUserStore(player)
	svc := newValidationFixture(t, &fakeAIClient{}, &fakeGateway{}, users, newFakeTransactionStore())

	result := &models.ValidationResult{IsValid: true, Amount: 1000}
	tx, err := svc.Approve(context.Background(), uuid.New(), "1112345678", result, nil)

	require.NoError(t, err)
	assert.Equal(t, player.ID, tx.UserID)
	assert.Equal(t, 1000.0, users.balanceOf(player.ID))
}

func TestApproveResolvesPendingTransaction(t *testing.T) {
	player := testPlayer("+5491112345678")
	users := newFakeUserStore(player)
	pending := &models.Transaction{
		ID:     uuid.New(),
		UserID: player.ID,
		Amount: 3000,
		Type:   models.TypeDeposit,
		Status: models.StatusPending,
	}
	txs := newFakeTransactionStore(pending)
	svc := newValidationFixture(t, &fakeAIClient{}, &fakeGateway{}, users, txs)

	// The operator typed a different amount; the pending transaction's
	// recorded amount wins.
	result := &models.ValidationResult{IsValid: true, Amount: 9999}
	tx, err := svc.Approve(context.Background(), uuid.New(), player.Phone, result, &pending.ID)

	require.NoError(t, err)
	assert.Equal(t, pending.ID, tx.ID)
	assert.Equal(t, models.StatusApproved, tx.Status)
	assert.Equal(t, 3000.0, tx.Amount)
	assert.Equal(t, 3000.0, users.balanceOf(player.ID))
}

func TestRejectDelegatesToSettlement(t *testing.T) {
	player := testPlayer("+5491112345678")
	users := newFakeUserStore(player)
	pending := &models.Transaction{
		ID:     uuid.New(),
		UserID: player.ID,
		Amount: 3000,
		Type:   models.TypeDeposit,
		Status: models.StatusPending,
	}
	txs := newFakeTransactionStore(pending)
	svc := newValidationFixture(t, &fakeAIClient{}, &fakeGateway{}, users, txs)

	tx, err := svc.Reject(context.Background(), uuid.New(), pending.ID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, tx.Status)
	assert.Zero(t, users.balanceOf(player.ID))
}
