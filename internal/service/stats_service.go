package service

import (
	"context"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/pkg/cache"

	"go.uber.org/zap"
)

const statsCacheKey = "dashboard:stats"

// DashboardStats is the back-office overview panel.
type DashboardStats struct {
	TotalDeposits    float64 `json:"total_deposits"`
	TotalWithdrawals float64 `json:"total_withdrawals"`
	PendingCount     int     `json:"pending_count"`
	UserCount        int     `json:"user_count"`
}

// StatsService aggregates dashboard figures, with a short-lived Redis cache
// in front. Settlement invalidates the cache so approved amounts show up
// immediately.
type StatsService struct {
	txs    TransactionStore
	users  UserStore
	cache  *cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewStatsService(txs TransactionStore, users UserStore, c *cache.Cache, ttl time.Duration, logger *zap.Logger) *StatsService {
	return &StatsService{
		txs:    txs,
		users:  users,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *StatsService) Summary(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if hit, err := s.cache.Get(ctx, statsCacheKey, &stats); err != nil {
		s.logger.Warn("Stats cache read failed", zap.Error(err))
	} else if hit {
		return &stats, nil
	}

	txs, err := s.txs.List(ctx, "", "")
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, tx := range txs {
		switch {
		case tx.Status == models.StatusApproved && tx.Type == models.TypeDeposit:
			stats.TotalDeposits += tx.Amount
		case tx.Status == models.StatusApproved && tx.Type == models.TypeWithdrawal:
			stats.TotalWithdrawals += tx.Amount
		case tx.Status == models.StatusPending:
			stats.PendingCount++
		}
	}
	stats.UserCount = len(users)

	if err := s.cache.Set(ctx, statsCacheKey, &stats, s.ttl); err != nil {
		s.logger.Warn("Stats cache write failed", zap.Error(err))
	}

	return &stats, nil
}
