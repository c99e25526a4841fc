package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id int64) (*Loan, error)
	// GetByIDForBorrower returns ErrNotFoundOrForbidden for both a
	// missing row and a borrower mismatch.
	GetByIDForBorrower(ctx context.Context, id, borrowerID int64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
}

type RepaymentRepository interface {
	// Upsert inserts or fully overwrites the loan's single repayment
	// row, keyed on loan_id.
	Upsert(ctx context.Context, r *LoanRepayment) error
	GetByLoanID(ctx context.Context, loanID int64) (*LoanRepayment, error)
}

type LiquidationRepository interface {
	// Create fails with ErrLiquidationAlreadyRequested when a row for
	// the loan already exists; the unique constraint on loan_id is the
	// authoritative duplicate signal.
	Create(ctx context.Context, l *LoanLiquidation) error
	GetByLoanID(ctx context.Context, loanID int64) (*LoanLiquidation, error)
	// UpdateTargetAmount touches only liquidation_target_amount and
	// status; it is safe to call more than once with the same value.
	UpdateTargetAmount(ctx context.Context, l *LoanLiquidation) error
}
