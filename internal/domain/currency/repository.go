package currency

import (
	"context"
	"time"
)

// Repository is read-only; rates and currency metadata are written by
// the price ingestion and back-office services, never by this core.
type Repository interface {
	// GetPair resolves both legs or fails with ErrPairNotFound; never a
	// partial result.
	GetPair(ctx context.Context, principalChain, principalToken, collateralChain, collateralToken string) (*Pair, error)

	GetByID(ctx context.Context, id int64) (*Currency, error)

	// GetLatestRate returns the newest rate with source_date <= asOf, or
	// the globally newest rate when asOf is nil. Ties on source_date go
	// to the last inserted row.
	GetLatestRate(ctx context.Context, priceFeedID int64, asOf *time.Time) (*ExchangeRate, error)

	// GetLatestConfig resolves an effective-dated policy row with the
	// same latest-as-of semantics.
	GetLatestConfig(ctx context.Context, key string, asOf *time.Time) (*PlatformConfig, error)
}
