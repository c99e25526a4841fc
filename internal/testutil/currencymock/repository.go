package currencymock

import (
	"context"
	"time"

	domain "lendhub-backend/internal/domain/currency"
)

// Repo is a function-backed mock satisfying currency.Repository.
type Repo struct {
	GetPairFn         func(ctx context.Context, pChain, pToken, cChain, cToken string) (*domain.Pair, error)
	GetByIDFn         func(ctx context.Context, id int64) (*domain.Currency, error)
	GetLatestRateFn   func(ctx context.Context, priceFeedID int64, asOf *time.Time) (*domain.ExchangeRate, error)
	GetLatestConfigFn func(ctx context.Context, key string, asOf *time.Time) (*domain.PlatformConfig, error)
}

func (m *Repo) GetPair(ctx context.Context, pChain, pToken, cChain, cToken string) (*domain.Pair, error) {
	if m.GetPairFn != nil {
		return m.GetPairFn(ctx, pChain, pToken, cChain, cToken)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.Currency, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetLatestRate(ctx context.Context, priceFeedID int64, asOf *time.Time) (*domain.ExchangeRate, error) {
	if m.GetLatestRateFn != nil {
		return m.GetLatestRateFn(ctx, priceFeedID, asOf)
	}
	return nil, context.Canceled
}

func (m *Repo) GetLatestConfig(ctx context.Context, key string, asOf *time.Time) (*domain.PlatformConfig, error) {
	if m.GetLatestConfigFn != nil {
		return m.GetLatestConfigFn(ctx, key, asOf)
	}
	return nil, context.Canceled
}
