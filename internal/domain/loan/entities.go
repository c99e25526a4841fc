package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOriginated Status = "originated"
	StatusActive     Status = "active"
	StatusRepaid     Status = "repaid"
	StatusLiquidated Status = "liquidated"
	StatusDefaulted  Status = "defaulted"
	StatusClosed     Status = "closed"
)

// Initiator identifies which party triggered a repayment or liquidation.
type Initiator string

const (
	InitiatorBorrower Initiator = "borrower"
	InitiatorLender   Initiator = "lender"
	InitiatorSystem   Initiator = "system"
)

// Loan is a funded loan created when an application is matched.
// RepaymentAmount = principal + interest + premium + liquidation fee by
// construction; it is never re-derived at read time.
type Loan struct {
	ID                   int64           `gorm:"column:id;primaryKey" json:"id"`
	LoanApplicationID    int64           `gorm:"column:loan_application_id;not null;uniqueIndex" json:"loan_application_id"`
	BorrowerID           int64           `gorm:"column:borrower_id;not null;index" json:"borrower_id"`
	LenderID             int64           `gorm:"column:lender_id;not null;index" json:"lender_id"`
	PrincipalCurrencyID  int64           `gorm:"column:principal_currency_id;not null" json:"principal_currency_id"`
	PrincipalAmount      decimal.Decimal `gorm:"column:principal_amount;type:decimal(38,0);not null" json:"principal_amount"`
	InterestAmount       decimal.Decimal `gorm:"column:interest_amount;type:decimal(38,0);not null" json:"interest_amount"`
	PremiumAmount        decimal.Decimal `gorm:"column:premium_amount;type:decimal(38,0);not null" json:"premium_amount"`
	LiquidationFeeAmount decimal.Decimal `gorm:"column:liquidation_fee_amount;type:decimal(38,0);not null" json:"liquidation_fee_amount"`
	RepaymentAmount      decimal.Decimal `gorm:"column:repayment_amount;type:decimal(38,0);not null" json:"repayment_amount"`
	CollateralCurrencyID int64           `gorm:"column:collateral_currency_id;not null" json:"collateral_currency_id"`
	CollateralAmount     decimal.Decimal `gorm:"column:collateral_amount;type:decimal(38,0);not null" json:"collateral_amount"`
	McLtvRatio           decimal.Decimal `gorm:"column:mc_ltv_ratio;type:decimal(6,2);not null" json:"mc_ltv_ratio"`
	Status               Status          `gorm:"column:status;size:32;not null" json:"status"`
	OriginationDate      time.Time       `gorm:"column:origination_date;not null" json:"origination_date"`
	MaturityDate         time.Time       `gorm:"column:maturity_date;not null" json:"maturity_date"`
	CreatedAt            time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// OutstandingAmount is what a liquidation must recover: the full
// contractual repayment amount.
func (l *Loan) OutstandingAmount() decimal.Decimal { return l.RepaymentAmount }

// LoanRepayment tracks which party initiated the loan's current
// repayment cycle. At most one row per loan; later attempts overwrite
// every field via upsert, so only the latest invoice reference survives.
type LoanRepayment struct {
	ID                   int64     `gorm:"column:id;primaryKey" json:"id"`
	LoanID               int64     `gorm:"column:loan_id;not null;uniqueIndex:ux_loan_repayments_loan" json:"loan_id"`
	Initiator            Initiator `gorm:"column:initiator;size:16;not null" json:"initiator"`
	RepaymentInvoiceID   int64     `gorm:"column:repayment_invoice_id;not null" json:"repayment_invoice_id"`
	RepaymentInvoiceDate time.Time `gorm:"column:repayment_invoice_date;not null" json:"repayment_invoice_date"`
	Acknowledgment       string    `gorm:"column:acknowledgment;size:64;not null" json:"acknowledgment"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LoanRepayment) TableName() string { return "loan_repayments" }

type LiquidationStatus string

const (
	LiquidationRequested LiquidationStatus = "requested"
	LiquidationFinalized LiquidationStatus = "finalized"
)

// LoanLiquidation is a liquidation order for a loan. The target amount
// starts as a zero placeholder and is finalized by a downstream
// valuation step once market depth is known.
type LoanLiquidation struct {
	ID                      int64             `gorm:"column:id;primaryKey" json:"id"`
	LoanID                  int64             `gorm:"column:loan_id;not null;uniqueIndex:ux_loan_liquidations_loan" json:"loan_id"`
	Initiator               Initiator         `gorm:"column:initiator;size:16;not null" json:"initiator"`
	LiquidationTargetAmount decimal.Decimal   `gorm:"column:liquidation_target_amount;type:decimal(38,0);not null" json:"liquidation_target_amount"`
	MarketProvider          string            `gorm:"column:market_provider;size:64;not null" json:"market_provider"`
	MarketSymbol            string            `gorm:"column:market_symbol;size:32;not null" json:"market_symbol"`
	OrderRef                string            `gorm:"column:order_ref;size:128;not null" json:"order_ref"`
	Status                  LiquidationStatus `gorm:"column:status;size:16;not null" json:"status"`
	OrderDate               time.Time         `gorm:"column:order_date;not null" json:"order_date"`
	Acknowledgment          string            `gorm:"column:acknowledgment;size:64;not null" json:"acknowledgment"`
	CreatedAt               time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LoanLiquidation) TableName() string { return "loan_liquidations" }
