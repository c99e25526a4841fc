package uow

import (
	"context"

	"lendhub-backend/internal/domain/application"
	"lendhub-backend/internal/domain/currency"
	"lendhub-backend/internal/domain/invoice"
	"lendhub-backend/internal/domain/loan"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Applications application.Repository
	Invoices     invoice.Repository
	Loans        loan.Repository
	Repayments   loan.RepaymentRepository
	Liquidations loan.LiquidationRepository
	Currencies   currency.Repository
}

// UnitOfWork runs fn inside a single transaction: commit when fn
// returns nil, roll back and return fn's error unmodified otherwise.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
