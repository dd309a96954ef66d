package service

import (
	"context"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/internal/repository"

	"github.com/google/uuid"
)

// Store interfaces are declared on the consumer side so services can be
// exercised against in-memory fakes. The repository package provides the
// Postgres implementations.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	GetByPhoneAndRole(ctx context.Context, phone string, role models.UserRole) (*models.User, error)
	SearchByPhone(ctx context.Context, fragment string) ([]*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateAutopilot(ctx context.Context, id uuid.UUID, enabled bool) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) error
	IncrementBalance(ctx context.Context, id uuid.UUID, amount float64) error
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, status models.TransactionStatus, txType models.TransactionType) ([]*models.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.TransactionStatus, processedBy uuid.UUID) error
}

type MessageStore interface {
	Create(ctx context.Context, msg *models.Message) error
	ListByPhone(ctx context.Context, phone string) ([]*models.Message, error)
}

type BroadcastStore interface {
	Create(ctx context.Context, b *models.Broadcast) error
	List(ctx context.Context) ([]*models.Broadcast, error)
}

type SettingsStore interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	Save(ctx context.Context, settings *models.AppSettings) error
}

var (
	_ UserStore        = (*repository.UserRepository)(nil)
	_ TransactionStore = (*repository.TransactionRepository)(nil)
	_ MessageStore     = (*repository.MessageRepository)(nil)
	_ BroadcastStore   = (*repository.BroadcastRepository)(nil)
	_ SettingsStore    = (*repository.SettingsRepository)(nil)
)
