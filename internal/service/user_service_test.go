package service

import (
	"context"
	"testing"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateUserStartsWithZeroBalance(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, zap.NewNop())

	user, err := svc.Create(context.Background(), " Juan Pérez ", " +5491112345678 ", models.RoleCashier)

	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", user.Name)
	assert.Equal(t, "+5491112345678", user.Phone)
	assert.Zero(t, user.Balance)
	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.False(t, user.AutopilotEnabled)

	stored, err := users.GetByPhone(context.Background(), "+5491112345678")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestCreateUserRejectsMissingFields(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), zap.NewNop())

	_, err := svc.Create(context.Background(), "", "+549111", models.RoleCashier)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(context.Background(), "Juan", "  ", models.RoleCashier)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestCreateUserRejectsDuplicatePhone(t *testing.T) {
	svc := NewUserService(newFakeUserStore(testPlayer("+5491112345678")), zap.NewNop())

	_, err := svc.Create(context.Background(), "Otro", "+5491112345678", models.RoleCashier)

	assert.ErrorIs(t, err, ErrUserExists)
}

func TestImportSkipsBlankRowsAndCounts(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, zap.NewNop())

	applied, err := svc.Import(context.Background(), []ImportedUser{
		{Name: "Juan", Phone: "+549111"},
		{Name: "", Phone: "+549222"},
		{Name: "María", Phone: ""},
		{Name: "Carlos", Phone: "+549333"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	all, _ := users.List(context.Background())
	assert.Len(t, all, 2)
}

func TestImportRefreshesNameKeepsBalance(t *testing.T) {
	existing := testPlayer("+549111")
	existing.Balance = 750
	users := newFakeUserStore(existing)
	svc := NewUserService(users, zap.NewNop())

	applied, err := svc.Import(context.Background(), []ImportedUser{
		{Name: "Juan P. González", Phone: "+549111"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	stored, _ := users.GetByPhone(context.Background(), "+549111")
	assert.Equal(t, "Juan P. González", stored.Name)
	assert.Equal(t, 750.0, stored.Balance)
}

func TestToggleAutopilot(t *testing.T) {
	player := testPlayer("+549111")
	users := newFakeUserStore(player)
	svc := NewUserService(users, zap.NewNop())

	user, err := svc.ToggleAutopilot(context.Background(), player.ID)
	require.NoError(t, err)
	assert.True(t, user.AutopilotEnabled)

	user, err = svc.ToggleAutopilot(context.Background(), player.ID)
	require.NoError(t, err)
	assert.False(t, user.AutopilotEnabled)
}

func TestSetStatusBlocksUser(t *testing.T) {
	player := testPlayer("+549111")
	users := newFakeUserStore(player)
	svc := NewUserService(users, zap.NewNop())

	user, err := svc.SetStatus(context.Background(), player.ID, models.UserStatusBlocked)

	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBlocked, user.Status)
}
