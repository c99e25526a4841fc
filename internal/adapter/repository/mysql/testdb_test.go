package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests ---
//
// DECIMAL(38,0) would get NUMERIC affinity in sqlite and silently lose
// precision above 2^63, so amount columns become TEXT here; the
// shopspring driver round-trips them exactly.

type currencySQLite struct {
	ID            int64  `gorm:"column:id;primaryKey"`
	BlockchainKey string `gorm:"column:blockchain_key;uniqueIndex:ux_currencies_chain_token"`
	TokenID       string `gorm:"column:token_id;uniqueIndex:ux_currencies_chain_token"`
	Symbol        string `gorm:"column:symbol"`
	Name          string `gorm:"column:name"`
	Decimals      int    `gorm:"column:decimals"`
	PriceFeedID   int64  `gorm:"column:price_feed_id"`
	MinLoanAmount string `gorm:"column:min_loan_amount;type:text"`
	MaxLoanAmount string `gorm:"column:max_loan_amount;type:text"`
	SafeLtv       string `gorm:"column:safe_ltv;type:text"`
	WarningLtv    string `gorm:"column:warning_ltv;type:text"`
	MarginCallLtv string `gorm:"column:margin_call_ltv;type:text"`
	LiquidationLtv string `gorm:"column:liquidation_ltv;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (currencySQLite) TableName() string { return "currencies" }

type exchangeRateSQLite struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PriceFeedID int64     `gorm:"column:price_feed_id;index"`
	BidPrice    string    `gorm:"column:bid_price;type:text"`
	AskPrice    string    `gorm:"column:ask_price;type:text"`
	SourceDate  time.Time `gorm:"column:source_date"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (exchangeRateSQLite) TableName() string { return "exchange_rates" }

type platformConfigSQLite struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ConfigKey     string    `gorm:"column:config_key;index"`
	ConfigValue   string    `gorm:"column:config_value;type:text"`
	EffectiveDate time.Time `gorm:"column:effective_date"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (platformConfigSQLite) TableName() string { return "platform_configs" }

type applicationSQLite struct {
	ID                   int64      `gorm:"column:id;primaryKey"`
	BorrowerID           int64      `gorm:"column:borrower_id;index"`
	PrincipalCurrencyID  int64      `gorm:"column:principal_currency_id"`
	PrincipalAmount      string     `gorm:"column:principal_amount;type:text"`
	CollateralCurrencyID int64      `gorm:"column:collateral_currency_id"`
	CollateralAmount     string     `gorm:"column:collateral_amount;type:text"`
	MinLtvRatio          string     `gorm:"column:min_ltv_ratio;type:text"`
	MaxLtvRatio          string     `gorm:"column:max_ltv_ratio;type:text"`
	TermDays             int        `gorm:"column:term_days"`
	LiquidationMode      string     `gorm:"column:liquidation_mode"`
	Status               string     `gorm:"column:status"`
	AppliedDate          time.Time  `gorm:"column:applied_date"`
	ExpiredDate          time.Time  `gorm:"column:expired_date"`
	ClosedDate           *time.Time `gorm:"column:closed_date"`
	ClosedReason         string     `gorm:"column:closed_reason"`
	CreatedAt            time.Time  `gorm:"column:created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at"`
}

func (applicationSQLite) TableName() string { return "loan_applications" }

type invoiceSQLite struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	UserID         int64      `gorm:"column:user_id;index"`
	CurrencyID     int64      `gorm:"column:currency_id"`
	InvoicedAmount string     `gorm:"column:invoiced_amount;type:text"`
	PrepaidAmount  string     `gorm:"column:prepaid_amount;type:text"`
	PaidAmount     string     `gorm:"column:paid_amount;type:text"`
	WalletAddress  string     `gorm:"column:wallet_address"`
	DerivationPath string     `gorm:"column:derivation_path"`
	InvoiceType    string     `gorm:"column:invoice_type"`
	Status         string     `gorm:"column:status"`
	ReferenceID    int64      `gorm:"column:reference_id;index"`
	InvoiceDate    time.Time  `gorm:"column:invoice_date"`
	DueDate        time.Time  `gorm:"column:due_date"`
	ExpiredDate    *time.Time `gorm:"column:expired_date"`
	PaidDate       *time.Time `gorm:"column:paid_date"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (invoiceSQLite) TableName() string { return "invoices" }

type loanSQLite struct {
	ID                   int64     `gorm:"column:id;primaryKey"`
	LoanApplicationID    int64     `gorm:"column:loan_application_id;uniqueIndex"`
	BorrowerID           int64     `gorm:"column:borrower_id;index"`
	LenderID             int64     `gorm:"column:lender_id;index"`
	PrincipalCurrencyID  int64     `gorm:"column:principal_currency_id"`
	PrincipalAmount      string    `gorm:"column:principal_amount;type:text"`
	InterestAmount       string    `gorm:"column:interest_amount;type:text"`
	PremiumAmount        string    `gorm:"column:premium_amount;type:text"`
	LiquidationFeeAmount string    `gorm:"column:liquidation_fee_amount;type:text"`
	RepaymentAmount      string    `gorm:"column:repayment_amount;type:text"`
	CollateralCurrencyID int64     `gorm:"column:collateral_currency_id"`
	CollateralAmount     string    `gorm:"column:collateral_amount;type:text"`
	McLtvRatio           string    `gorm:"column:mc_ltv_ratio;type:text"`
	Status               string    `gorm:"column:status"`
	OriginationDate      time.Time `gorm:"column:origination_date"`
	MaturityDate         time.Time `gorm:"column:maturity_date"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type repaymentSQLite struct {
	ID                   int64     `gorm:"column:id;primaryKey"`
	LoanID               int64     `gorm:"column:loan_id;uniqueIndex:ux_loan_repayments_loan"`
	Initiator            string    `gorm:"column:initiator"`
	RepaymentInvoiceID   int64     `gorm:"column:repayment_invoice_id"`
	RepaymentInvoiceDate time.Time `gorm:"column:repayment_invoice_date"`
	Acknowledgment       string    `gorm:"column:acknowledgment"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (repaymentSQLite) TableName() string { return "loan_repayments" }

type liquidationSQLite struct {
	ID                      int64     `gorm:"column:id;primaryKey"`
	LoanID                  int64     `gorm:"column:loan_id;uniqueIndex:ux_loan_liquidations_loan"`
	Initiator               string    `gorm:"column:initiator"`
	LiquidationTargetAmount string    `gorm:"column:liquidation_target_amount;type:text"`
	MarketProvider          string    `gorm:"column:market_provider"`
	MarketSymbol            string    `gorm:"column:market_symbol"`
	OrderRef                string    `gorm:"column:order_ref"`
	Status                  string    `gorm:"column:status"`
	OrderDate               time.Time `gorm:"column:order_date"`
	Acknowledgment          string    `gorm:"column:acknowledgment"`
	CreatedAt               time.Time `gorm:"column:created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at"`
}

func (liquidationSQLite) TableName() string { return "loan_liquidations" }

// openTestDB migrates the sqlite-safe schemas, NOT the domain models.
// TranslateError matches production so duplicate keys surface as
// gorm.ErrDuplicatedKey.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&currencySQLite{}, &exchangeRateSQLite{}, &platformConfigSQLite{},
		&applicationSQLite{}, &invoiceSQLite{},
		&loanSQLite{}, &repaymentSQLite{}, &liquidationSQLite{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
