package repository

import (
	"context"
	"fmt"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const userColumns = "id, phone, name, password, role, balance, status, autopilot_enabled, created_at"

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns("id", "phone", "name", "password", "role", "balance", "status", "autopilot_enabled", "created_at").
		Values(user.ID, user.Phone, user.Name, user.Password, user.Role, user.Balance, user.Status, user.AutopilotEnabled, user.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// Upsert inserts a user or, when the phone already exists, refreshes the
// display name. Balances are never touched by imports.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns("id", "phone", "name", "password", "role", "balance", "status", "autopilot_enabled", "created_at").
		Values(user.ID, user.Phone, user.Name, user.Password, user.Role, user.Balance, user.Status, user.AutopilotEnabled, user.CreatedAt).
		Suffix("ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := squirrel.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	return r.scanOne(ctx, query)
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := squirrel.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"phone": phone}).
		PlaceholderFormat(squirrel.Dollar)

	return r.scanOne(ctx, query)
}

// GetByPhoneAndRole resolves a login: the phone must belong to an ACTIVE
// user with the requested role.
func (r *UserRepository) GetByPhoneAndRole(ctx context.Context, phone string, role models.UserRole) (*models.User, error) {
	query := squirrel.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"phone": phone, "role": role, "status": models.UserStatusActive}).
		PlaceholderFormat(squirrel.Dollar)

	return r.scanOne(ctx, query)
}

// SearchByPhone returns users whose stored phone contains the fragment,
// newest first.
func (r *UserRepository) SearchByPhone(ctx context.Context, fragment string) ([]*models.User, error) {
	query := squirrel.Select(userColumns).
		From("users").
		Where(squirrel.Like{"phone": fmt.Sprintf("%%%s%%", fragment)}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.scanMany(ctx, query)
}

func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query := squirrel.Select(userColumns).
		From("users").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.scanMany(ctx, query)
}

func (r *UserRepository) UpdateAutopilot(ctx context.Context, id uuid.UUID, enabled bool) error {
	query := squirrel.Update("users").
		Set("autopilot_enabled", enabled).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) error {
	query := squirrel.Update("users").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// IncrementBalance atomically adds amount (which may be negative) to the
// user's balance. This server-side increment is the only atomic primitive
// the settlement path relies on.
func (r *UserRepository) IncrementBalance(ctx context.Context, id uuid.UUID, amount float64) error {
	query := squirrel.Update("users").
		Set("balance", squirrel.Expr("balance + ?", amount)).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) scanOne(ctx context.Context, query squirrel.SelectBuilder) (*models.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Phone, &user.Name, &user.Password, &user.Role,
		&user.Balance, &user.Status, &user.AutopilotEnabled, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) scanMany(ctx context.Context, query squirrel.SelectBuilder) ([]*models.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.Phone, &user.Name, &user.Password, &user.Role,
			&user.Balance, &user.Status, &user.AutopilotEnabled, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}
