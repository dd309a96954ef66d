package service

import (
	"context"
	"testing"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/dto"
	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(users *fakeUserStore) *AuthService {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, jwtManager, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthFixture(users)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Lucía",
		Phone:    "+5492230000001",
		Password: "secreto1",
		Role:     "CASHIER",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "CASHIER", resp.User.Role)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Phone:    "+5492230000001",
		Password: "secreto1",
		Role:     "CASHIER",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestLoginWrongPasswordOrRole(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthFixture(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Lucía",
		Phone:    "+5492230000001",
		Password: "secreto1",
		Role:     "CASHIER",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Phone: "+5492230000001", Password: "mal", Role: "CASHIER"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Phone: "+5492230000001", Password: "secreto1", Role: "ADMIN"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestBlockedUserCannotLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthFixture(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Lucía",
		Phone:    "+5492230000001",
		Password: "secreto1",
		Role:     "CASHIER",
	})
	require.NoError(t, err)

	stored, _ := users.GetByPhone(ctx, "+5492230000001")
	stored.Status = models.UserStatusBlocked

	_, err = svc.Login(ctx, &dto.LoginRequest{Phone: "+5492230000001", Password: "secreto1", Role: "CASHIER"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateAndMissingFields(t *testing.T) {
	users := newFakeUserStore(testPlayer("+5492230000001"))
	svc := newAuthFixture(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Otro", Phone: "+5492230000001", Password: "x"})
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "", Phone: "+549", Password: "x"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthFixture(users)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Lucía",
		Phone:    "+5492230000001",
		Password: "secreto1",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)

	_, err = svc.RefreshToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
