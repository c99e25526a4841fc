package loanmock

import (
	"context"

	domain "lendhub-backend/internal/domain/loan"
)

// Repo is a function-backed mock satisfying loan.Repository. Unset
// functions fall back to context.Canceled so misuse surfaces fast.
type Repo struct {
	CreateFn             func(ctx context.Context, l *domain.Loan) error
	GetByIDFn            func(ctx context.Context, id int64) (*domain.Loan, error)
	GetByIDForBorrowerFn func(ctx context.Context, id, borrowerID int64) (*domain.Loan, error)
	SaveFn               func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForBorrower(ctx context.Context, id, borrowerID int64) (*domain.Loan, error) {
	if m.GetByIDForBorrowerFn != nil {
		return m.GetByIDForBorrowerFn(ctx, id, borrowerID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

// RepaymentRepo mocks loan.RepaymentRepository.
type RepaymentRepo struct {
	UpsertFn      func(ctx context.Context, r *domain.LoanRepayment) error
	GetByLoanIDFn func(ctx context.Context, loanID int64) (*domain.LoanRepayment, error)
}

func (m *RepaymentRepo) Upsert(ctx context.Context, r *domain.LoanRepayment) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, r)
	}
	return nil
}

func (m *RepaymentRepo) GetByLoanID(ctx context.Context, loanID int64) (*domain.LoanRepayment, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

// LiquidationRepo mocks loan.LiquidationRepository.
type LiquidationRepo struct {
	CreateFn             func(ctx context.Context, l *domain.LoanLiquidation) error
	GetByLoanIDFn        func(ctx context.Context, loanID int64) (*domain.LoanLiquidation, error)
	UpdateTargetAmountFn func(ctx context.Context, l *domain.LoanLiquidation) error
}

func (m *LiquidationRepo) Create(ctx context.Context, l *domain.LoanLiquidation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *LiquidationRepo) GetByLoanID(ctx context.Context, loanID int64) (*domain.LoanLiquidation, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *LiquidationRepo) UpdateTargetAmount(ctx context.Context, l *domain.LoanLiquidation) error {
	if m.UpdateTargetAmountFn != nil {
		return m.UpdateTargetAmountFn(ctx, l)
	}
	return nil
}
