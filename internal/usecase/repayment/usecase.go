package repayment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	invoiceDomain "lendhub-backend/internal/domain/invoice"
	loanDomain "lendhub-backend/internal/domain/loan"
	"lendhub-backend/internal/domain/uow"
	"lendhub-backend/pkg/snowflake"
)

const (
	// Invoice due windows, in days from the repayment date.
	repaymentDueDays      = 7
	earlyRepaymentDueDays = 3
)

type Usecase struct {
	uow   uow.UnitOfWork
	loans loanDomain.Repository
	ids   *snowflake.Generator
}

func NewUsecase(tx uow.UnitOfWork, loans loanDomain.Repository, ids *snowflake.Generator) *Usecase {
	return &Usecase{uow: tx, loans: loans, ids: ids}
}

// Repay opens a scheduled repayment cycle: a 7-day invoice plus the
// loan's single repayment row. Re-requesting before paying simply
// replaces the row, so the latest invoice reference wins.
func (u *Usecase) Repay(ctx context.Context, in RepayInput) (*RepayResult, error) {
	var out *RepayResult

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		res, err := u.openCycle(ctx, r, in, invoiceDomain.TypeRepayment, repaymentDueDays)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RepayEarly settles before maturity: a 3-day invoice window and a
// breakdown projection of what the borrower is paying off. Store
// failures here carry extra context; the cause stays unwrappable.
func (u *Usecase) RepayEarly(ctx context.Context, in RepayInput) (*EarlyRepayResult, error) {
	var out *EarlyRepayResult

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := u.guardedLoan(ctx, r, in)
		if err != nil {
			return err
		}
		res, err := u.issueCycle(ctx, r, l, in.RepaymentDate, invoiceDomain.TypeEarlyRepayment, earlyRepaymentDueDays)
		if err != nil {
			return err
		}
		out = &EarlyRepayResult{
			RepayResult: *res,
			Breakdown: Breakdown{
				PrincipalAmount:      l.PrincipalAmount,
				InterestAmount:       l.InterestAmount,
				PremiumAmount:        l.PremiumAmount,
				LiquidationFeeAmount: l.LiquidationFeeAmount,
				TotalAmount:          l.RepaymentAmount,
			},
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("early repayment for loan %d: %w", in.LoanID, err)
	}
	return out, nil
}

// LoanAmounts is a read-only projection of a loan's financial fields.
func (u *Usecase) LoanAmounts(ctx context.Context, borrowerID, loanID int64) (*LoanAmountsDTO, error) {
	l, err := u.loans.GetByIDForBorrower(ctx, loanID, borrowerID)
	if err != nil {
		return nil, err
	}
	return &LoanAmountsDTO{
		LoanID:               l.ID,
		PrincipalAmount:      l.PrincipalAmount,
		InterestAmount:       l.InterestAmount,
		PremiumAmount:        l.PremiumAmount,
		LiquidationFeeAmount: l.LiquidationFeeAmount,
		RepaymentAmount:      l.RepaymentAmount,
		CollateralAmount:     l.CollateralAmount,
		Status:               string(l.Status),
		MaturityDate:         l.MaturityDate,
	}, nil
}

func (u *Usecase) openCycle(ctx context.Context, r uow.Repos, in RepayInput, typ invoiceDomain.Type, dueDays int) (*RepayResult, error) {
	l, err := u.guardedLoan(ctx, r, in)
	if err != nil {
		return nil, err
	}
	return u.issueCycle(ctx, r, l, in.RepaymentDate, typ, dueDays)
}

func (u *Usecase) guardedLoan(ctx context.Context, r uow.Repos, in RepayInput) (*loanDomain.Loan, error) {
	l, err := r.Loans.GetByIDForBorrower(ctx, in.LoanID, in.BorrowerID)
	if err != nil {
		return nil, err
	}
	if l.Status != loanDomain.StatusActive {
		return nil, loanDomain.ErrInvalidStatus
	}
	return l, nil
}

func (u *Usecase) issueCycle(ctx context.Context, r uow.Repos, l *loanDomain.Loan, repayDate time.Time, typ invoiceDomain.Type, dueDays int) (*RepayResult, error) {
	repayDate = repayDate.UTC()

	inv := &invoiceDomain.Invoice{
		ID:             u.ids.NextID(),
		UserID:         l.BorrowerID,
		CurrencyID:     l.PrincipalCurrencyID,
		InvoicedAmount: l.RepaymentAmount,
		InvoiceType:    typ,
		Status:         invoiceDomain.StatusPending,
		ReferenceID:    l.ID,
		InvoiceDate:    repayDate,
		DueDate:        repayDate.AddDate(0, 0, dueDays),
	}
	if err := r.Invoices.Create(ctx, inv); err != nil {
		return nil, err
	}

	rep := &loanDomain.LoanRepayment{
		ID:                   u.ids.NextID(),
		LoanID:               l.ID,
		Initiator:            loanDomain.InitiatorBorrower,
		RepaymentInvoiceID:   inv.ID,
		RepaymentInvoiceDate: inv.InvoiceDate,
		Acknowledgment:       uuid.NewString(),
	}
	if err := r.Repayments.Upsert(ctx, rep); err != nil {
		return nil, err
	}

	return &RepayResult{
		LoanID:         l.ID,
		InvoiceID:      inv.ID,
		InvoicedAmount: inv.InvoicedAmount,
		InvoiceDate:    inv.InvoiceDate,
		DueDate:        inv.DueDate,
		Acknowledgment: rep.Acknowledgment,
	}, nil
}
