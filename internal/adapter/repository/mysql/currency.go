package mysql

import (
	"context"
	"errors"
	"time"

	currencyDomain "lendhub-backend/internal/domain/currency"

	"gorm.io/gorm"
)

type CurrencyRepository struct{ db *gorm.DB }

func NewCurrencyRepository(db *gorm.DB) *CurrencyRepository { return &CurrencyRepository{db: db} }

// GetPair fetches both legs in one query; a missing leg is a hard
// failure, never a partial pair.
func (r *CurrencyRepository) GetPair(ctx context.Context, principalChain, principalToken, collateralChain, collateralToken string) (*currencyDomain.Pair, error) {
	var rows []currencyDomain.Currency
	res := r.db.WithContext(ctx).
		Where("(blockchain_key = ? AND token_id = ?) OR (blockchain_key = ? AND token_id = ?)",
			principalChain, principalToken, collateralChain, collateralToken).
		Find(&rows)
	if res.Error != nil {
		return nil, res.Error
	}

	var pair currencyDomain.Pair
	foundPrincipal, foundCollateral := false, false
	for _, c := range rows {
		if c.BlockchainKey == principalChain && c.TokenID == principalToken {
			pair.Principal = c
			foundPrincipal = true
		}
		if c.BlockchainKey == collateralChain && c.TokenID == collateralToken {
			pair.Collateral = c
			foundCollateral = true
		}
	}
	if !foundPrincipal || !foundCollateral {
		return nil, currencyDomain.ErrPairNotFound
	}
	return &pair, nil
}

func (r *CurrencyRepository) GetByID(ctx context.Context, id int64) (*currencyDomain.Currency, error) {
	var out currencyDomain.Currency
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, currencyDomain.ErrPairNotFound
	}
	return &out, res.Error
}

func (r *CurrencyRepository) GetLatestRate(ctx context.Context, priceFeedID int64, asOf *time.Time) (*currencyDomain.ExchangeRate, error) {
	q := r.db.WithContext(ctx).Where("price_feed_id = ?", priceFeedID)
	if asOf != nil {
		q = q.Where("source_date <= ?", asOf.UTC())
	}
	var out currencyDomain.ExchangeRate
	// Ties on source_date go to the last inserted row.
	res := q.Order("source_date DESC").Order("id DESC").First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, currencyDomain.ErrRateNotFound
	}
	return &out, res.Error
}

func (r *CurrencyRepository) GetLatestConfig(ctx context.Context, key string, asOf *time.Time) (*currencyDomain.PlatformConfig, error) {
	q := r.db.WithContext(ctx).Where("config_key = ?", key)
	if asOf != nil {
		q = q.Where("effective_date <= ?", asOf.UTC())
	}
	var out currencyDomain.PlatformConfig
	res := q.Order("effective_date DESC").Order("id DESC").First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, currencyDomain.ErrRateNotFound
	}
	return &out, res.Error
}
