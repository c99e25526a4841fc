package liquidation

import (
	"time"

	"github.com/shopspring/decimal"
)

type EstimateInput struct {
	BorrowerID   int64
	LoanID       int64
	EstimateDate time.Time
}

type EstimateResult struct {
	LoanID                 int64           `json:"loan_id"`
	CollateralAmount       decimal.Decimal `json:"collateral_amount"`
	OutstandingAmount      decimal.Decimal `json:"outstanding_amount"`
	BidPrice               decimal.Decimal `json:"bid_price"`
	RateSourceDate         time.Time       `json:"rate_source_date"`
	CurrentValuationAmount decimal.Decimal `json:"current_valuation_amount"`
	CurrentLtvRatio        decimal.Decimal `json:"current_ltv_ratio"`
	SlippagePercent        decimal.Decimal `json:"slippage_percent"`
	MarketProvider         string          `json:"market_provider"`
}

type RequestInput struct {
	BorrowerID int64
	LoanID     int64
}

type RequestResult struct {
	LiquidationID           int64           `json:"liquidation_id"`
	LoanID                  int64           `json:"loan_id"`
	OrderRef                string          `json:"order_ref"`
	Status                  string          `json:"status"`
	LiquidationTargetAmount decimal.Decimal `json:"liquidation_target_amount"`
	OrderDate               time.Time       `json:"order_date"`
	Acknowledgment          string          `json:"acknowledgment"`
}

type UpdateTargetInput struct {
	LoanID       int64
	TargetAmount decimal.Decimal
}
