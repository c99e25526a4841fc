package invoice

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeCollateralDeposit Type = "collateral_deposit"
	TypeRepayment         Type = "repayment"
	TypeEarlyRepayment    Type = "early_repayment"
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusPartiallyPaid Status = "partially_paid"
	StatusPaid          Status = "paid"
	StatusOverdue       Status = "overdue"
	StatusExpired       Status = "expired"
	StatusCancelled     Status = "cancelled"
)

var ErrNotFound = errors.New("invoice not found")

// Invoice is a payable request tied to a loan or application scope.
// InvoicedAmount must be positive; payment progress lives in
// prepaid/paid amounts, settled by the external settlement watcher.
type Invoice struct {
	ID             int64           `gorm:"column:id;primaryKey" json:"id"`
	UserID         int64           `gorm:"column:user_id;not null;index" json:"user_id"`
	CurrencyID     int64           `gorm:"column:currency_id;not null" json:"currency_id"`
	InvoicedAmount decimal.Decimal `gorm:"column:invoiced_amount;type:decimal(38,0);not null" json:"invoiced_amount"`
	PrepaidAmount  decimal.Decimal `gorm:"column:prepaid_amount;type:decimal(38,0);default:0" json:"prepaid_amount"`
	PaidAmount     decimal.Decimal `gorm:"column:paid_amount;type:decimal(38,0);default:0" json:"paid_amount"`
	WalletAddress  string          `gorm:"column:wallet_address;size:128" json:"wallet_address"`
	DerivationPath string          `gorm:"column:derivation_path;size:64" json:"derivation_path"`
	InvoiceType    Type            `gorm:"column:invoice_type;size:32;not null" json:"invoice_type"`
	Status         Status          `gorm:"column:status;size:32;not null" json:"status"`
	ReferenceID    int64           `gorm:"column:reference_id;not null;index:idx_invoices_ref_type" json:"reference_id"`
	InvoiceDate    time.Time       `gorm:"column:invoice_date;not null" json:"invoice_date"`
	DueDate        time.Time       `gorm:"column:due_date;not null" json:"due_date"`
	ExpiredDate    *time.Time      `gorm:"column:expired_date" json:"expired_date,omitempty"`
	PaidDate       *time.Time      `gorm:"column:paid_date" json:"paid_date,omitempty"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }
