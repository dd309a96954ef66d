package repository

import (
	"context"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BroadcastRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBroadcastRepository(db *pgxpool.Pool, logger *zap.Logger) *BroadcastRepository {
	return &BroadcastRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BroadcastRepository) Create(ctx context.Context, b *models.Broadcast) error {
	query := squirrel.Insert("broadcasts").
		Columns("id", "message_text", "recipient_count", "status", "created_at").
		Values(b.ID, b.MessageText, b.RecipientCount, b.Status, b.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BroadcastRepository) List(ctx context.Context) ([]*models.Broadcast, error) {
	query := squirrel.Select("id", "message_text", "recipient_count", "status", "created_at").
		From("broadcasts").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var broadcasts []*models.Broadcast
	for rows.Next() {
		var b models.Broadcast
		if err := rows.Scan(&b.ID, &b.MessageText, &b.RecipientCount, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		broadcasts = append(broadcasts, &b)
	}

	return broadcasts, rows.Err()
}
