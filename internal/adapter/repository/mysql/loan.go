package mysql

import (
	"context"
	"errors"

	loanDomain "lendhub-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id int64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFoundOrForbidden
	}
	return &out, res.Error
}

func (r *LoanRepository) GetByIDForBorrower(ctx context.Context, id, borrowerID int64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("id = ? AND borrower_id = ?", id, borrowerID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		// Ownership mismatch is indistinguishable from a missing row.
		return nil, loanDomain.ErrNotFoundOrForbidden
	}
	return &out, res.Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository { return &RepaymentRepository{db: db} }

// Upsert replaces the loan's single repayment row in place. The ON
// CONFLICT target is the unique index on loan_id, so repeated repayment
// attempts leave exactly one row with the latest field values.
func (r *RepaymentRepository) Upsert(ctx context.Context, rep *loanDomain.LoanRepayment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "loan_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"initiator", "repayment_invoice_id", "repayment_invoice_date", "acknowledgment", "updated_at",
			}),
		}).
		Create(rep).Error
}

func (r *RepaymentRepository) GetByLoanID(ctx context.Context, loanID int64) (*loanDomain.LoanRepayment, error) {
	var out loanDomain.LoanRepayment
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFoundOrForbidden
	}
	return &out, res.Error
}

type LiquidationRepository struct{ db *gorm.DB }

func NewLiquidationRepository(db *gorm.DB) *LiquidationRepository {
	return &LiquidationRepository{db: db}
}

// Create relies on the unique index on loan_id: a duplicate-key error
// from the store is the authoritative already-requested signal,
// regardless of what any pre-check saw.
func (r *LiquidationRepository) Create(ctx context.Context, l *loanDomain.LoanLiquidation) error {
	err := r.db.WithContext(ctx).Create(l).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return loanDomain.ErrLiquidationAlreadyRequested
	}
	return err
}

func (r *LiquidationRepository) GetByLoanID(ctx context.Context, loanID int64) (*loanDomain.LoanLiquidation, error) {
	var out loanDomain.LoanLiquidation
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrLiquidationNotFound
	}
	return &out, res.Error
}

// UpdateTargetAmount is deliberately narrow: only the target amount and
// status columns move, everything else is untouched.
func (r *LiquidationRepository) UpdateTargetAmount(ctx context.Context, l *loanDomain.LoanLiquidation) error {
	return r.db.WithContext(ctx).
		Model(&loanDomain.LoanLiquidation{}).
		Where("loan_id = ?", l.LoanID).
		Updates(map[string]any{
			"liquidation_target_amount": l.LiquidationTargetAmount,
			"status":                    l.Status,
		}).Error
}
