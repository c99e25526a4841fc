package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"lendhub-backend/internal/domain/application"
	"lendhub-backend/internal/domain/invoice"
	"lendhub-backend/internal/domain/uow"
	"lendhub-backend/pkg/snowflake"
)

const (
	// Collateral must arrive within 3 days of applying.
	collateralDepositDueDays = 3

	minPage  = 1
	minLimit = 1
	maxLimit = 100
)

// Known sort keys; anything else falls back to the repository's
// default order (newest applied first).
var allowedSorts = map[string]struct{}{
	"":             {},
	"applied_date": {},
	"expired_date": {},
}

type Usecase struct {
	uow  uow.UnitOfWork
	apps application.Repository
	ids  *snowflake.Generator
	log  *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, apps application.Repository, ids *snowflake.Generator, log *zap.Logger) *Usecase {
	return &Usecase{uow: tx, apps: apps, ids: ids, log: log}
}

// Create inserts the application and its collateral-deposit invoice in
// one transaction; a failure on either insert leaves no rows behind.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ApplicationDTO, error) {
	var dto *ApplicationDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		pair, err := r.Currencies.GetPair(ctx,
			in.PrincipalBlockchainKey, in.PrincipalTokenID,
			in.CollateralBlockchainKey, in.CollateralTokenID)
		if err != nil {
			return err
		}

		a := &application.LoanApplication{
			ID:                   u.ids.NextID(),
			BorrowerID:           in.BorrowerID,
			PrincipalCurrencyID:  pair.Principal.ID,
			PrincipalAmount:      in.PrincipalAmount,
			CollateralCurrencyID: pair.Collateral.ID,
			CollateralAmount:     in.CollateralAmount,
			MinLtvRatio:          in.MinLtvRatio,
			MaxLtvRatio:          in.MaxLtvRatio,
			TermDays:             in.TermDays,
			LiquidationMode:      in.LiquidationMode,
			Status:               application.StatusPendingCollateral,
			AppliedDate:          in.AppliedDate.UTC(),
			ExpiredDate:          in.ExpiredDate.UTC(),
		}
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}

		inv := &invoice.Invoice{
			ID:             u.ids.NextID(),
			UserID:         in.BorrowerID,
			CurrencyID:     pair.Collateral.ID,
			InvoicedAmount: in.CollateralAmount,
			WalletAddress:  in.CollateralWalletAddress,
			DerivationPath: in.CollateralDerivationPath,
			InvoiceType:    invoice.TypeCollateralDeposit,
			Status:         invoice.StatusPending,
			ReferenceID:    a.ID,
			InvoiceDate:    a.AppliedDate,
			DueDate:        a.AppliedDate.AddDate(0, 0, collateralDepositDueDays),
		}
		if err := r.Invoices.Create(ctx, inv); err != nil {
			return err
		}

		dto = toDTO(a)
		dto.CollateralInvoiceID = inv.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Modify extends the expiration date; legal only while the application
// is still waiting for collateral.
func (u *Usecase) Modify(ctx context.Context, in ModifyInput) (*ApplicationDTO, error) {
	var dto *ApplicationDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByIDForBorrower(ctx, in.ApplicationID, in.BorrowerID)
		if err != nil {
			return err
		}
		if !a.CanModify() {
			return application.TransitionError("modify", a.Status)
		}
		if in.ExpiredDate.Before(a.AppliedDate) {
			return application.TransitionError("modify", a.Status)
		}
		a.ExpiredDate = in.ExpiredDate.UTC()
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Cancel closes the application and its open collateral invoice.
func (u *Usecase) Cancel(ctx context.Context, in CancelInput) (*ApplicationDTO, error) {
	var dto *ApplicationDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByIDForBorrower(ctx, in.ApplicationID, in.BorrowerID)
		if err != nil {
			return err
		}
		if !a.CanCancel() {
			return application.TransitionError("cancel", a.Status)
		}

		now := time.Now().UTC()
		a.Status = application.StatusCancelled
		a.ClosedDate = &now
		a.ClosedReason = in.Reason
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		inv, err := r.Invoices.GetActiveByReference(ctx, a.ID, invoice.TypeCollateralDeposit)
		switch {
		case err == nil:
			inv.Status = invoice.StatusCancelled
			if err := r.Invoices.Save(ctx, inv); err != nil {
				return err
			}
		case err != invoice.ErrNotFound:
			return err
		}

		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// List pages a borrower's applications. Page and limit are clamped
// before querying; pagination metadata derives from the clamped values.
func (u *Usecase) List(ctx context.Context, in ListInput) (*ListResult, error) {
	page, limit := clampPage(in.Page, in.Limit)

	if _, ok := allowedSorts[in.Sort]; !ok {
		// Malformed sort input is a safe-default situation, not an error.
		u.log.Warn("ignoring unknown sort key", zap.String("sort", in.Sort))
	}

	rows, total, err := u.apps.List(ctx, application.ListFilter{
		BorrowerID: in.BorrowerID,
		Status:     in.Status,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	out := &ListResult{
		Items: make([]ApplicationDTO, 0, len(rows)),
		Meta: PageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1 && total > 0,
		},
	}
	for i := range rows {
		out.Items = append(out.Items, *toDTO(&rows[i]))
	}
	return out, nil
}

func clampPage(page, limit int) (int, int) {
	if page < minPage {
		page = minPage
	}
	if limit < minLimit {
		limit = minLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func toDTO(a *application.LoanApplication) *ApplicationDTO {
	return &ApplicationDTO{
		ID:                   a.ID,
		BorrowerID:           a.BorrowerID,
		PrincipalCurrencyID:  a.PrincipalCurrencyID,
		PrincipalAmount:      a.PrincipalAmount,
		CollateralCurrencyID: a.CollateralCurrencyID,
		CollateralAmount:     a.CollateralAmount,
		MinLtvRatio:          a.MinLtvRatio,
		MaxLtvRatio:          a.MaxLtvRatio,
		TermDays:             a.TermDays,
		LiquidationMode:      string(a.LiquidationMode),
		Status:               string(a.Status),
		AppliedDate:          a.AppliedDate,
		ExpiredDate:          a.ExpiredDate,
		ClosedDate:           a.ClosedDate,
		ClosedReason:         a.ClosedReason,
	}
}
