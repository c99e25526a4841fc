package currency

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrPairNotFound = errors.New("currency pair not found")
	ErrRateNotFound = errors.New("exchange rate not found")
)

// Currency is a fungible asset identified by (blockchain_key, token_id).
// Decimals is immutable once a loan references the currency; amounts are
// stored scaled by 10^18 regardless of the on-chain precision.
type Currency struct {
	ID            int64           `gorm:"column:id;primaryKey" json:"id"`
	BlockchainKey string          `gorm:"column:blockchain_key;size:32;not null;uniqueIndex:ux_currencies_chain_token" json:"blockchain_key"`
	TokenID       string          `gorm:"column:token_id;size:64;not null;uniqueIndex:ux_currencies_chain_token" json:"token_id"`
	Symbol        string          `gorm:"column:symbol;size:16;not null" json:"symbol"`
	Name          string          `gorm:"column:name;size:64;not null" json:"name"`
	Decimals      int             `gorm:"column:decimals;not null" json:"decimals"`
	PriceFeedID   int64           `gorm:"column:price_feed_id;index" json:"price_feed_id"`
	MinLoanAmount decimal.Decimal `gorm:"column:min_loan_amount;type:decimal(38,0);default:0" json:"min_loan_amount"`
	MaxLoanAmount decimal.Decimal `gorm:"column:max_loan_amount;type:decimal(38,0);default:0" json:"max_loan_amount"`
	SafeLtv       decimal.Decimal `gorm:"column:safe_ltv;type:decimal(6,2);default:0" json:"safe_ltv"`
	WarningLtv    decimal.Decimal `gorm:"column:warning_ltv;type:decimal(6,2);default:0" json:"warning_ltv"`
	MarginCallLtv decimal.Decimal `gorm:"column:margin_call_ltv;type:decimal(6,2);default:0" json:"margin_call_ltv"`
	LiquidationLtv decimal.Decimal `gorm:"column:liquidation_ltv;type:decimal(6,2);default:0" json:"liquidation_ltv"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Currency) TableName() string { return "currencies" }

// Pair bundles the two legs of a loan's currency pair.
type Pair struct {
	Principal  Currency
	Collateral Currency
}

// ExchangeRate is a priced quote for a feed as of a point in time.
// Invariant: BidPrice <= AskPrice.
type ExchangeRate struct {
	ID          int64           `gorm:"column:id;primaryKey" json:"id"`
	PriceFeedID int64           `gorm:"column:price_feed_id;not null;index:idx_exchange_rates_feed_date" json:"price_feed_id"`
	BidPrice    decimal.Decimal `gorm:"column:bid_price;type:decimal(38,0);not null" json:"bid_price"`
	AskPrice    decimal.Decimal `gorm:"column:ask_price;type:decimal(38,0);not null" json:"ask_price"`
	SourceDate  time.Time       `gorm:"column:source_date;not null;index:idx_exchange_rates_feed_date" json:"source_date"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ExchangeRate) TableName() string { return "exchange_rates" }

// PlatformConfig is an effective-dated policy row (interest rate,
// provision rate, LTV policy). Resolution is latest-as-of-date, the same
// semantics as exchange rates.
type PlatformConfig struct {
	ID            int64           `gorm:"column:id;primaryKey" json:"id"`
	ConfigKey     string          `gorm:"column:config_key;size:64;not null;index:idx_platform_configs_key_date" json:"config_key"`
	ConfigValue   decimal.Decimal `gorm:"column:config_value;type:decimal(38,0);not null" json:"config_value"`
	EffectiveDate time.Time       `gorm:"column:effective_date;not null;index:idx_platform_configs_key_date" json:"effective_date"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PlatformConfig) TableName() string { return "platform_configs" }

// Well-known platform config keys.
const (
	ConfigInterestRate  = "loan_interest_rate"
	ConfigProvisionRate = "loan_provision_rate"
)
