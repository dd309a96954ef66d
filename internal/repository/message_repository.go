package repository

import (
	"context"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const messageColumns = "id, sender_phone, receiver_phone, text, timestamp, is_incoming, sent_by_ai"

type MessageRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewMessageRepository(db *pgxpool.Pool, logger *zap.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	query := squirrel.Insert("messages").
		Columns("id", "sender_phone", "receiver_phone", "text", "timestamp", "is_incoming", "sent_by_ai").
		Values(msg.ID, msg.SenderPhone, msg.ReceiverPhone, msg.Text, msg.Timestamp, msg.IsIncoming, msg.SentByAI).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByPhone returns the full conversation with a contact, oldest first.
func (r *MessageRepository) ListByPhone(ctx context.Context, phone string) ([]*models.Message, error) {
	query := squirrel.Select(messageColumns).
		From("messages").
		Where(squirrel.Or{
			squirrel.Eq{"sender_phone": phone},
			squirrel.Eq{"receiver_phone": phone},
		}).
		OrderBy("timestamp ASC").
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

	var messages []*models.Message
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(
			&msg.ID, &msg.SenderPhone, &msg.ReceiverPhone, &msg.Text,
			&msg.Timestamp, &msg.IsIncoming, &msg.SentByAI,
		); err != nil {
			return nil, err
		}
		messages = append(messages, &msg)
	}

	return messages, rows.Err()
}
