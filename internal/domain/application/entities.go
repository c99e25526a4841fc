package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPendingCollateral Status = "pending_collateral"
	StatusPublished         Status = "published"
	StatusMatched           Status = "matched"
	StatusCancelled         Status = "cancelled"
	StatusClosed            Status = "closed"
	StatusExpired           Status = "expired"
)

type LiquidationMode string

const (
	LiquidationModeFull    LiquidationMode = "full"
	LiquidationModePartial LiquidationMode = "partial"
)

var (
	ErrNotFound          = errors.New("loan application not found")
	ErrInvalidTransition = errors.New("invalid loan application transition")
)

// TransitionError wraps ErrInvalidTransition naming the current status
// and the attempted action.
func TransitionError(action string, current Status) error {
	return fmt.Errorf("%w: cannot %s application in status %q", ErrInvalidTransition, action, current)
}

// LoanApplication is a borrower's funding request. It owns the
// collateral-deposit invoice created in the same transaction. Rows are
// never deleted; the lifecycle ends by status transition.
type LoanApplication struct {
	ID                   int64           `gorm:"column:id;primaryKey" json:"id"`
	BorrowerID           int64           `gorm:"column:borrower_id;not null;index:idx_loan_applications_borrower" json:"borrower_id"`
	PrincipalCurrencyID  int64           `gorm:"column:principal_currency_id;not null" json:"principal_currency_id"`
	PrincipalAmount      decimal.Decimal `gorm:"column:principal_amount;type:decimal(38,0);not null" json:"principal_amount"`
	CollateralCurrencyID int64           `gorm:"column:collateral_currency_id;not null" json:"collateral_currency_id"`
	CollateralAmount     decimal.Decimal `gorm:"column:collateral_amount;type:decimal(38,0);not null" json:"collateral_amount"`
	MinLtvRatio          decimal.Decimal `gorm:"column:min_ltv_ratio;type:decimal(6,2);not null" json:"min_ltv_ratio"`
	MaxLtvRatio          decimal.Decimal `gorm:"column:max_ltv_ratio;type:decimal(6,2);not null" json:"max_ltv_ratio"`
	TermDays             int             `gorm:"column:term_days;not null" json:"term_days"`
	LiquidationMode      LiquidationMode `gorm:"column:liquidation_mode;size:16;not null" json:"liquidation_mode"`
	Status               Status          `gorm:"column:status;size:32;not null;index:idx_loan_applications_borrower" json:"status"`
	AppliedDate          time.Time       `gorm:"column:applied_date;not null" json:"applied_date"`
	ExpiredDate          time.Time       `gorm:"column:expired_date;not null" json:"expired_date"`
	ClosedDate           *time.Time      `gorm:"column:closed_date" json:"closed_date,omitempty"`
	ClosedReason         string          `gorm:"column:closed_reason;size:128" json:"closed_reason,omitempty"`
	CreatedAt            time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LoanApplication) TableName() string { return "loan_applications" }

// CanCancel reports whether cancel is legal from the current status.
func (a *LoanApplication) CanCancel() bool {
	return a.Status == StatusPendingCollateral || a.Status == StatusPublished
}

// CanModify reports whether the expiration may still be extended.
func (a *LoanApplication) CanModify() bool {
	return a.Status == StatusPendingCollateral
}
