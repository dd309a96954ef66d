package repository

import (
	"context"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const transactionColumns = "id, user_id, amount, type, status, payment_method, external_ref, processed_by, timestamp, notes"

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("id", "user_id", "amount", "type", "status", "payment_method", "external_ref", "processed_by", "timestamp", "notes").
		Values(tx.ID, tx.UserID, tx.Amount, tx.Type, tx.Status, tx.PaymentMethod, tx.ExternalRef, tx.ProcessedBy, tx.Timestamp, tx.Notes).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns).
		From("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Status,
		&tx.PaymentMethod, &tx.ExternalRef, &tx.ProcessedBy, &tx.Timestamp, &tx.Notes,
	)
	if err != nil {
		return nil, err
	}

	return &tx, nil
}

// List returns transactions newest first, optionally filtered by status
// and/or type.
func (r *TransactionRepository) List(ctx context.Context, status models.TransactionStatus, txType models.TransactionType) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns).
		From("transactions").
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		query = query.Where(squirrel.Eq{"status": status})
	}
	if txType != "" {
		query = query.Where(squirrel.Eq{"type": txType})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Status,
			&tx.PaymentMethod, &tx.ExternalRef, &tx.ProcessedBy, &tx.Timestamp, &tx.Notes,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

// UpdateStatus moves a transaction to a terminal status and records the
// operator that resolved it.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.TransactionStatus, processedBy uuid.UUID) error {
	query := squirrel.Update("transactions").
		Set("status", status).
		Set("processed_by", processedBy).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
