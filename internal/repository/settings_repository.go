package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository persists the single application settings row. Payment
// and WhatsApp sections are stored as JSONB and validated into typed
// structs on read.
type SettingsRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSettingsRepository(db *pgxpool.Pool, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SettingsRepository) Get(ctx context.Context) (*models.AppSettings, error) {
	query := squirrel.Select("payment", "whatsapp", "updated_at").
		From("app_settings").
		Where(squirrel.Eq{"id": 1}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var paymentRaw, whatsappRaw []byte
	var settings models.AppSettings
	err = r.db.QueryRow(ctx, sql, args...).Scan(&paymentRaw, &whatsappRaw, &settings.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSettingsNotFound
	} else if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(paymentRaw, &settings.Payment); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(whatsappRaw, &settings.WhatsApp); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings *models.AppSettings) error {
	paymentRaw, err := json.Marshal(settings.Payment)
	if err != nil {
		return err
	}
	whatsappRaw, err := json.Marshal(settings.WhatsApp)
	if err != nil {
		return err
	}

	settings.UpdatedAt = time.Now()

	query := squirrel.Insert("app_settings").
		Columns("id", "payment", "whatsapp", "updated_at").
		Values(1, paymentRaw, whatsappRaw, settings.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET payment = EXCLUDED.payment, whatsapp = EXCLUDED.whatsapp, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
