package service

import (
	"context"
	"strings"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportedUser is one row of a bulk contact import.
type ImportedUser struct {
	Name  string
	Phone string
}

// UserService manages player and operator records.
type UserService struct {
	users  UserStore
	logger *zap.Logger
}

func NewUserService(users UserStore, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create registers a player contact. Balance always starts at zero; only
// approved transactions move it.
func (s *UserService) Create(ctx context.Context, name, phone string, role models.UserRole) (*models.User, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return nil, ErrMissingFields
	}

	if existing, _ := s.users.GetByPhone(ctx, phone); existing != nil {
		return nil, ErrUserExists
	}

	user := &models.User{
		ID:        uuid.New(),
		Phone:     phone,
		Name:      sanitizeUTF8(name),
		Role:      role,
		Balance:   0,
		Status:    models.UserStatusActive,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Import upserts contacts keyed by phone. Existing users keep their balance
// and only get their name refreshed. Returns how many rows were applied.
func (s *UserService) Import(ctx context.Context, rows []ImportedUser) (int, error) {
	applied := 0
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		phone := strings.TrimSpace(row.Phone)
		if name == "" || phone == "" {
			continue
		}

		user := &models.User{
			ID:        uuid.New(),
			Phone:     phone,
			Name:      sanitizeUTF8(name),
			Role:      models.RoleCashier,
			Balance:   0,
			Status:    models.UserStatusActive,
			CreatedAt: time.Now(),
		}
		if err := s.users.Upsert(ctx, user); err != nil {
			return applied, err
		}
		applied++
	}

	s.logger.Info("User import completed", zap.Int("applied", applied), zap.Int("received", len(rows)))
	return applied, nil
}

// ToggleAutopilot flips the per-user AI reply flag.
func (s *UserService) ToggleAutopilot(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.users.UpdateAutopilot(ctx, id, !user.AutopilotEnabled); err != nil {
		return nil, err
	}
	user.AutopilotEnabled = !user.AutopilotEnabled
	return user, nil
}

func (s *UserService) SetStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.users.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	user.Status = status
	return user, nil
}
