package liquidation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	currencyDomain "lendhub-backend/internal/domain/currency"
	loanDomain "lendhub-backend/internal/domain/loan"
	"lendhub-backend/internal/domain/uow"
	"lendhub-backend/pkg/fixedpoint"
	"lendhub-backend/pkg/snowflake"
)

// Flat slippage assumption reported by estimates; the authoritative
// figure arrives from the downstream valuation pipeline.
var slippagePercent = decimal.NewFromInt(2)

// placeholderProvider marks an order whose venue the valuation pipeline
// has not picked yet.
const placeholderProvider = "pending"

var errZeroValuation = errors.New("collateral valuation is zero")

type Usecase struct {
	uow        uow.UnitOfWork
	loans      loanDomain.Repository
	currencies currencyDomain.Repository
	ids        *snowflake.Generator
}

func NewUsecase(tx uow.UnitOfWork, loans loanDomain.Repository, currencies currencyDomain.Repository, ids *snowflake.Generator) *Usecase {
	return &Usecase{uow: tx, loans: loans, currencies: currencies, ids: ids}
}

// Estimate is read-only: it values the collateral at the most recent
// bid at or before the estimate date and reports the resulting LTV. No
// order is placed and no transaction is opened.
func (u *Usecase) Estimate(ctx context.Context, in EstimateInput) (*EstimateResult, error) {
	l, err := u.loans.GetByIDForBorrower(ctx, in.LoanID, in.BorrowerID)
	if err != nil {
		return nil, err
	}
	if err := validStatus(l); err != nil {
		return nil, err
	}

	col, err := u.currencies.GetByID(ctx, l.CollateralCurrencyID)
	if err != nil {
		return nil, err
	}
	asOf := in.EstimateDate.UTC()
	rate, err := u.currencies.GetLatestRate(ctx, col.PriceFeedID, &asOf)
	if err != nil {
		return nil, err
	}

	valuation := fixedpoint.MulDiv18(l.CollateralAmount, rate.BidPrice)
	if valuation.Sign() == 0 {
		return nil, errZeroValuation
	}
	outstanding := l.OutstandingAmount()
	ltv := fixedpoint.PercentOf(outstanding, valuation)

	return &EstimateResult{
		LoanID:                 l.ID,
		CollateralAmount:       l.CollateralAmount,
		OutstandingAmount:      outstanding,
		BidPrice:               rate.BidPrice,
		RateSourceDate:         rate.SourceDate,
		CurrentValuationAmount: valuation,
		CurrentLtvRatio:        ltv,
		SlippagePercent:        slippagePercent,
		MarketProvider:         placeholderProvider,
	}, nil
}

// Request places a liquidation order with a zero target amount; the
// downstream valuation pipeline finalizes the figure later. At most one
// order per loan: the pre-check is only an early exit, the unique
// constraint on loan_id is what actually enforces it.
func (u *Usecase) Request(ctx context.Context, in RequestInput) (*RequestResult, error) {
	var out *RequestResult

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByIDForBorrower(ctx, in.LoanID, in.BorrowerID)
		if err != nil {
			return err
		}
		if err := validStatus(l); err != nil {
			return err
		}

		_, err = r.Liquidations.GetByLoanID(ctx, l.ID)
		switch {
		case err == nil:
			return loanDomain.ErrLiquidationAlreadyRequested
		case !errors.Is(err, loanDomain.ErrLiquidationNotFound):
			return err
		}

		col, err := r.Currencies.GetByID(ctx, l.CollateralCurrencyID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		liq := &loanDomain.LoanLiquidation{
			ID:                      u.ids.NextID(),
			LoanID:                  l.ID,
			Initiator:               loanDomain.InitiatorBorrower,
			LiquidationTargetAmount: decimal.Zero,
			MarketProvider:          placeholderProvider,
			MarketSymbol:            col.Symbol,
			OrderRef:                fmt.Sprintf("%d-%d", l.ID, now.UnixMilli()),
			Status:                  loanDomain.LiquidationRequested,
			OrderDate:               now,
			Acknowledgment:          uuid.NewString(),
		}
		if err := r.Liquidations.Create(ctx, liq); err != nil {
			return err
		}

		out = &RequestResult{
			LiquidationID:           liq.ID,
			LoanID:                  liq.LoanID,
			OrderRef:                liq.OrderRef,
			Status:                  string(liq.Status),
			LiquidationTargetAmount: liq.LiquidationTargetAmount,
			OrderDate:               liq.OrderDate,
			Acknowledgment:          liq.Acknowledgment,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateTargetAmount finalizes the order's target amount once the
// valuation pipeline has the authoritative figure. Only the target
// column and status move; repeating the call with the same value is a
// no-op.
func (u *Usecase) UpdateTargetAmount(ctx context.Context, in UpdateTargetInput) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		liq, err := r.Liquidations.GetByLoanID(ctx, in.LoanID)
		if err != nil {
			return err
		}
		liq.LiquidationTargetAmount = in.TargetAmount
		liq.Status = loanDomain.LiquidationFinalized
		return r.Liquidations.UpdateTargetAmount(ctx, liq)
	})
}

func validStatus(l *loanDomain.Loan) error {
	if l.Status != loanDomain.StatusActive && l.Status != loanDomain.StatusOriginated {
		return loanDomain.ErrInvalidStatus
	}
	return nil
}
