package service

import (
	"context"
	"strings"
	"sync"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// In-memory stores backing the service tests. They mirror what the
// Postgres repositories do, including the substring phone search and the
// atomic balance increment.

type fakeUserStore struct {
	mu      sync.Mutex
	users   []*models.User
	incrErr error
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	return &fakeUserStore{users: users}
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	return nil
}

func (s *fakeUserStore) Upsert(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Phone == user.Phone {
			u.Name = user.Name
			return nil
		}
	}
	s.users = append(s.users, user)
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeUserStore) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeUserStore) GetByPhoneAndRole(ctx context.Context, phone string, role models.UserRole) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Phone == phone && u.Role == role && u.Status == models.UserStatusActive {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeUserStore) SearchByPhone(ctx context.Context, fragment string) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matches []*models.User
	// Newest first, like the Postgres ORDER BY created_at DESC.
	for i := len(s.users) - 1; i >= 0; i-- {
		if strings.Contains(s.users[i].Phone, fragment) {
			matches = append(matches, s.users[i])
		}
	}
	return matches, nil
}

func (s *fakeUserStore) List(ctx context.Context) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.User(nil), s.users...), nil
}

func (s *fakeUserStore) UpdateAutopilot(ctx context.Context, id uuid.UUID, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u.AutopilotEnabled = enabled
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *fakeUserStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u.Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *fakeUserStore) IncrementBalance(ctx context.Context, id uuid.UUID, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.incrErr != nil {
		return s.incrErr
	}
	for _, u := range s.users {
		if u.ID == id {
			u.Balance += amount
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *fakeUserStore) balanceOf(id uuid.UUID) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u.Balance
		}
	}
	return 0
}

type fakeTransactionStore struct {
	mu  sync.Mutex
	txs []*models.Transaction

	// getHook runs before GetByID returns, outside the lock. Lets tests
	// interleave two in-flight approvals.
	getHook func(id uuid.UUID)
}

func newFakeTransactionStore(txs ...*models.Transaction) *fakeTransactionStore {
	return &fakeTransactionStore{txs: txs}
}

func (s *fakeTransactionStore) Create(ctx context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, tx)
	return nil
}

func (s *fakeTransactionStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	s.mu.Lock()
	var found *models.Transaction
	for _, tx := range s.txs {
		if tx.ID == id {
			clone := *tx
			found = &clone
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		return nil, pgx.ErrNoRows
	}
	if s.getHook != nil {
		s.getHook(id)
	}
	return found, nil
}

func (s *fakeTransactionStore) List(ctx context.Context, status models.TransactionStatus, txType models.TransactionType) ([]*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Transaction
	for _, tx := range s.txs {
		if status != "" && tx.Status != status {
			continue
		}
		if txType != "" && tx.Type != txType {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (s *fakeTransactionStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.TransactionStatus, processedBy uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.txs {
		if tx.ID == id {
			tx.Status = status
			tx.ProcessedBy = &processedBy
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *fakeTransactionStore) statusOf(id uuid.UUID) models.TransactionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.txs {
		if tx.ID == id {
			return tx.Status
		}
	}
	return ""
}

type fakeMessageStore struct {
	mu   sync.Mutex
	msgs []*models.Message
}

func (s *fakeMessageStore) Create(ctx context.Context, msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
	return nil
}

func (s *fakeMessageStore) ListByPhone(ctx context.Context, phone string) ([]*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Message
	for _, m := range s.msgs {
		if m.SenderPhone == phone || m.ReceiverPhone == phone {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeBroadcastStore struct {
	mu         sync.Mutex
	broadcasts []*models.Broadcast
}

func (s *fakeBroadcastStore) Create(ctx context.Context, b *models.Broadcast) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcasts = append(s.broadcasts, b)
	return nil
}

func (s *fakeBroadcastStore) List(ctx context.Context) ([]*models.Broadcast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.Broadcast(nil), s.broadcasts...), nil
}

type fakeSettingsStore struct {
	mu      sync.Mutex
	current *models.AppSettings
	saves   int
}

func (s *fakeSettingsStore) Get(ctx context.Context) (*models.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, repository.ErrSettingsNotFound
	}
	return s.current, nil
}

func (s *fakeSettingsStore) Save(ctx context.Context, settings *models.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = settings
	s.saves++
	return nil
}

type fakeAIClient struct {
	result *models.ValidationResult
	reply  string
	err    error

	lastPersona string
	lastContext string
	lastModel   string
}

func (f *fakeAIClient) Configured() bool { return true }

func (f *fakeAIClient) ValidateReceipt(ctx context.Context, model string, image []byte, mimeType string) (*models.ValidationResult, error) {
	f.lastModel = model
	if f.err != nil {
		return nil, f.err
	}
	clone := *f.result
	return &clone, nil
}

func (f *fakeAIClient) SuggestReply(ctx context.Context, model, persona, chatContext string) (string, error) {
	f.lastModel = model
	f.lastPersona = persona
	f.lastContext = chatContext
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeAIClient) Ping(ctx context.Context) error { return f.err }

type fakeGateway struct {
	verification *PaymentVerification
	err          error
	calls        int
	lastRef      string
	lastAmount   float64
}

func (f *fakeGateway) VerifyPayment(ctx context.Context, externalRef string, expectedAmount float64) (*PaymentVerification, error) {
	f.calls++
	f.lastRef = externalRef
	f.lastAmount = expectedAmount
	if f.err != nil {
		return nil, f.err
	}
	return f.verification, nil
}
