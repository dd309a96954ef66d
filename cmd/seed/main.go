package main

import (
	"context"
	"log"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/internal/repository"
	"github.com/nubetechmdq-wq/crmcasino/pkg/auth"
	"github.com/nubetechmdq-wq/crmcasino/pkg/config"
	"github.com/nubetechmdq-wq/crmcasino/pkg/logger"
	"github.com/nubetechmdq-wq/crmcasino/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		phone TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'CASHIER',
		balance DOUBLE PRECISION NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		autopilot_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		amount DOUBLE PRECISION NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		payment_method TEXT NOT NULL DEFAULT '',
		external_ref TEXT NOT NULL DEFAULT '',
		processed_by UUID,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		notes TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id UUID PRIMARY KEY,
		sender_phone TEXT NOT NULL,
		receiver_phone TEXT NOT NULL,
		text TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		is_incoming BOOLEAN NOT NULL DEFAULT FALSE,
		sent_by_ai BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_sender_phone ON messages(sender_phone)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_receiver_phone ON messages(receiver_phone)`,
	`CREATE TABLE IF NOT EXISTS broadcasts (
		id UUID PRIMARY KEY,
		message_text TEXT NOT NULL,
		recipient_count INTEGER NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS app_settings (
		id INTEGER PRIMARY KEY,
		payment JSONB NOT NULL,
		whatsapp JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	if err := createSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}
	appLogger.Info("Schema created")

	userRepo := repository.NewUserRepository(db, appLogger)
	settingsRepo := repository.NewSettingsRepository(db, appLogger)

	if err := seedAdmin(ctx, userRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed admin", zap.Error(err))
	}

	if err := seedPlayers(ctx, userRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed demo players", zap.Error(err))
	}

	if err := seedSettings(ctx, settingsRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed settings", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func createSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, repo *repository.UserRepository, logger *zap.Logger) error {
	phone := "+5492230000000"
	if existing, _ := repo.GetByPhone(ctx, phone); existing != nil {
		logger.Info("Admin already seeded, skipping", zap.String("phone", phone))
		return nil
	}

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:        uuid.New(),
		Phone:     phone,
		Name:      "Administrador",
		Password:  hash,
		Role:      models.RoleAdmin,
		Balance:   0,
		Status:    models.UserStatusActive,
		CreatedAt: time.Now(),
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Seeded admin user", zap.String("phone", phone))
	return nil
}

func seedPlayers(ctx context.Context, repo *repository.UserRepository, logger *zap.Logger) error {
	players := []struct {
		name  string
		phone string
	}{
		{"Juan Pérez", "+5491112345678"},
		{"María López", "+5491123456789"},
		{"Carlos Gómez", "+5491134567890"},
	}

	seeded := 0
	for _, p := range players {
		if existing, _ := repo.GetByPhone(ctx, p.phone); existing != nil {
			continue
		}

		user := &models.User{
			ID:        uuid.New(),
			Phone:     p.phone,
			Name:      p.name,
			Role:      models.RoleCashier,
			Balance:   0,
			Status:    models.UserStatusActive,
			CreatedAt: time.Now(),
		}
		if err := repo.Create(ctx, user); err != nil {
			return err
		}
		seeded++
	}

	logger.Info("Seeded demo players", zap.Int("count", seeded))
	return nil
}

func seedSettings(ctx context.Context, repo *repository.SettingsRepository, logger *zap.Logger) error {
	if _, err := repo.Get(ctx); err == nil {
		logger.Info("Settings already seeded, skipping")
		return nil
	}

	settings := models.DefaultSettings()
	settings.UpdatedAt = time.Now()
	if err := repo.Save(ctx, settings); err != nil {
		return err
	}

	logger.Info("Seeded default settings")
	return nil
}
