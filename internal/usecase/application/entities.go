package application

import (
	"time"

	"github.com/shopspring/decimal"

	"lendhub-backend/internal/domain/application"
)

type CreateInput struct {
	BorrowerID               int64
	PrincipalBlockchainKey   string
	PrincipalTokenID         string
	PrincipalAmount          decimal.Decimal
	CollateralBlockchainKey  string
	CollateralTokenID        string
	CollateralAmount         decimal.Decimal
	MinLtvRatio              decimal.Decimal
	MaxLtvRatio              decimal.Decimal
	TermDays                 int
	LiquidationMode          application.LiquidationMode
	CollateralWalletAddress  string
	CollateralDerivationPath string
	AppliedDate              time.Time
	ExpiredDate              time.Time
}

type ModifyInput struct {
	BorrowerID    int64
	ApplicationID int64
	ExpiredDate   time.Time
}

type CancelInput struct {
	BorrowerID    int64
	ApplicationID int64
	Reason        string
}

type ListInput struct {
	BorrowerID int64
	Status     *application.Status
	Page       int
	Limit      int
	Sort       string
}

type ApplicationDTO struct {
	ID                   int64           `json:"id"`
	BorrowerID           int64           `json:"borrower_id"`
	PrincipalCurrencyID  int64           `json:"principal_currency_id"`
	PrincipalAmount      decimal.Decimal `json:"principal_amount"`
	CollateralCurrencyID int64           `json:"collateral_currency_id"`
	CollateralAmount     decimal.Decimal `json:"collateral_amount"`
	MinLtvRatio          decimal.Decimal `json:"min_ltv_ratio"`
	MaxLtvRatio          decimal.Decimal `json:"max_ltv_ratio"`
	TermDays             int             `json:"term_days"`
	LiquidationMode      string          `json:"liquidation_mode"`
	Status               string          `json:"status"`
	AppliedDate          time.Time       `json:"applied_date"`
	ExpiredDate          time.Time       `json:"expired_date"`
	ClosedDate           *time.Time      `json:"closed_date,omitempty"`
	ClosedReason         string          `json:"closed_reason,omitempty"`
	CollateralInvoiceID  int64           `json:"collateral_invoice_id,omitempty"`
}

type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

type ListResult struct {
	Items []ApplicationDTO `json:"items"`
	Meta  PageMeta         `json:"meta"`
}
