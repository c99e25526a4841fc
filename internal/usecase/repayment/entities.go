package repayment

import (
	"time"

	"github.com/shopspring/decimal"
)

type RepayInput struct {
	BorrowerID    int64
	LoanID        int64
	RepaymentDate time.Time
}

type RepayResult struct {
	LoanID         int64           `json:"loan_id"`
	InvoiceID      int64           `json:"invoice_id"`
	InvoicedAmount decimal.Decimal `json:"invoiced_amount"`
	InvoiceDate    time.Time       `json:"invoice_date"`
	DueDate        time.Time       `json:"due_date"`
	Acknowledgment string          `json:"acknowledgment"`
}

// Breakdown is the early-repayment projection. RemainingTermDays stays
// zero until the remaining-term computation lands downstream.
type Breakdown struct {
	PrincipalAmount      decimal.Decimal `json:"principal_amount"`
	InterestAmount       decimal.Decimal `json:"interest_amount"`
	PremiumAmount        decimal.Decimal `json:"premium_amount"`
	LiquidationFeeAmount decimal.Decimal `json:"liquidation_fee_amount"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	RemainingTermDays    int             `json:"remaining_term_days"`
}

type EarlyRepayResult struct {
	RepayResult
	Breakdown Breakdown `json:"breakdown"`
}

type LoanAmountsDTO struct {
	LoanID               int64           `json:"loan_id"`
	PrincipalAmount      decimal.Decimal `json:"principal_amount"`
	InterestAmount       decimal.Decimal `json:"interest_amount"`
	PremiumAmount        decimal.Decimal `json:"premium_amount"`
	LiquidationFeeAmount decimal.Decimal `json:"liquidation_fee_amount"`
	RepaymentAmount      decimal.Decimal `json:"repayment_amount"`
	CollateralAmount     decimal.Decimal `json:"collateral_amount"`
	Status               string          `json:"status"`
	MaturityDate         time.Time       `json:"maturity_date"`
}
