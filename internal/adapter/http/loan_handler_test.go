package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	currencyDomain "lendhub-backend/internal/domain/currency"
	loanDomain "lendhub-backend/internal/domain/loan"
	"lendhub-backend/internal/domain/uow"
	"lendhub-backend/internal/testutil/currencymock"
	"lendhub-backend/internal/testutil/invoicemock"
	"lendhub-backend/internal/testutil/loanmock"
	"lendhub-backend/internal/testutil/uowmock"
	liquidationUC "lendhub-backend/internal/usecase/liquidation"
	repaymentUC "lendhub-backend/internal/usecase/repayment"
	"lendhub-backend/pkg/fixedpoint"
	"lendhub-backend/pkg/snowflake"
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func handlerIDs(t *testing.T) *snowflake.Generator {
	t.Helper()
	g, err := snowflake.NewGenerator(5)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	return g
}

func testLoan() *loanDomain.Loan {
	return &loanDomain.Loan{
		ID:                   100,
		BorrowerID:           7,
		PrincipalCurrencyID:  1,
		CollateralCurrencyID: 2,
		PrincipalAmount:      fixedpoint.FromUnits(1000),
		RepaymentAmount:      fixedpoint.FromUnits(1075),
		CollateralAmount:     fixedpoint.One,
		Status:               loanDomain.StatusActive,
	}
}

func newLoanHandler(t *testing.T, loans *loanmock.Repo, liqs *loanmock.LiquidationRepo, currencies *currencymock.Repo) *LoanHandler {
	t.Helper()
	repos := uow.Repos{
		Loans:        loans,
		Invoices:     &invoicemock.Repo{},
		Repayments:   &loanmock.RepaymentRepo{},
		Liquidations: liqs,
		Currencies:   currencies,
	}
	tx := uowmock.Passthrough(repos)
	ids := handlerIDs(t)
	return NewLoanHandler(
		repaymentUC.NewUsecase(tx, loans, ids),
		liquidationUC.NewUsecase(tx, loans, currencies, ids),
	)
}

func loanRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *stdhttp.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("X-User-Id", "7")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("loan_id")
	c.SetParamValues("100")
	return c, rec
}

func TestRepay_Success(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		GetByIDForBorrowerFn: func(ctx context.Context, id, borrowerID int64) (*loanDomain.Loan, error) {
			return testLoan(), nil
		},
	}
	h := newLoanHandler(t, loans, &loanmock.LiquidationRepo{}, &currencymock.Repo{})

	c, rec := loanRequest(e, stdhttp.MethodPost, "/v1/loans/100/repayments", "")
	if err := h.Repay(c); err != nil {
		t.Fatalf("Repay error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var got repaymentUC.RepayResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.LoanID != 100 || got.Acknowledgment == "" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if !got.DueDate.Equal(got.InvoiceDate.AddDate(0, 0, 7)) {
		t.Fatalf("due date window wrong: %+v", got)
	}
}

func TestRepay_MissingUserHeader(t *testing.T) {
	e := newEchoWithValidator()
	h := newLoanHandler(t, &loanmock.Repo{}, &loanmock.LiquidationRepo{}, &currencymock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/v1/loans/100/repayments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("loan_id")
	c.SetParamValues("100")

	if err := h.Repay(c); err != nil {
		t.Fatalf("Repay error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRepay_ForeignLoanIs404(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		GetByIDForBorrowerFn: func(ctx context.Context, id, borrowerID int64) (*loanDomain.Loan, error) {
			return nil, loanDomain.ErrNotFoundOrForbidden
		},
	}
	h := newLoanHandler(t, loans, &loanmock.LiquidationRepo{}, &currencymock.Repo{})

	c, rec := loanRequest(e, stdhttp.MethodPost, "/v1/loans/100/repayments", "")
	if err := h.Repay(c); err != nil {
		t.Fatalf("Repay error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRepay_WrongStatusIs422(t *testing.T) {
	e := newEchoWithValidator()
	l := testLoan()
	l.Status = loanDomain.StatusRepaid
	loans := &loanmock.Repo{
		GetByIDForBorrowerFn: func(ctx context.Context, id, borrowerID int64) (*loanDomain.Loan, error) {
			return l, nil
		},
	}
	h := newLoanHandler(t, loans, &loanmock.LiquidationRepo{}, &currencymock.Repo{})

	c, rec := loanRequest(e, stdhttp.MethodPost, "/v1/loans/100/repayments", "")
	if err := h.Repay(c); err != nil {
		t.Fatalf("Repay error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestRepayEarly_Success(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		GetByIDForBorrowerFn: func(ctx context.Context, id, borrowerID int64) (*loanDomain.Loan, error) {
			return testLoan(), nil
		},
	}
	h := newLoanHandler(t, loans, &loanmock.LiquidationRepo{}, &currencymock.Repo{})

	c, rec := loanRequest(e, stdhttp.MethodPost, "/v1/loans/100/early-repayments", "")
	if err := h.RepayEarly(c); err != nil {
		t.Fatalf("RepayEarly error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var got repaymentUC.EarlyRepayResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !got.DueDate.Equal(got.InvoiceDate.AddDate(0, 0, 3)) {
		t.Fatalf("due date window wrong: %+v", got)
	}
	if !got.Breakdown.TotalAmount.Equal(fixedpoint.FromUnits(1075)) {
		t.Fatalf("breakdown total = %s", got.Breakdown.TotalAmount)
	}
}

func TestAmounts_Success(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		GetByIDForBorrowerFn: func(ctx context.Context, id, borrowerID int64) (*loanDomain.Loan, error) {
			return testLoan(), nil
		},
	}
	h := newLoanHandler(t, loans, &loanmock.LiquidationRepo{}, &currencymock.Repo{})

	c, rec := loanRequest(e, stdhttp.MethodGet, "/v1/loans/100/amounts", "")
	if err := h.Amounts(c); err != nil {
		t.Fatalf("Amounts error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got repaymentUC.LoanAmountsDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.LoanID != 100 || !got.RepaymentAmount.Equal(fixedpoint.FromUnits(1075)) {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestEstimateLiquidation_Success(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		GetByIDForBorrowerFn: func(ctx context.Context, id, borrowerID int64) (*loanDomain.Loan, error) {
			return testLoan(), nil
		},
	}
	var gotAsOf *time.Time
	currencies := &currencymock.Repo{
		GetByIDFn: func(ctx context.Context, id int64) (*currencyDomain.Currency, error) {
			return &currencyDomain.Currency{ID: 2, Symbol: "BTC", PriceFeedID: 42}, nil
		},
		GetLatestRateFn: func(ctx context.Context, feedID int64, asOf *time.Time) (*currencyDomain.ExchangeRate, error) {
			gotAsOf = asOf
			return &currencyDomain.ExchangeRate{
				BidPrice:   fixedpoint.FromUnits(3000),
				SourceDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	h := newLoanHandler(t, loans, &loanmock.LiquidationRepo{}, currencies)

	c, rec := loanRequest(e, stdhttp.MethodGet,
		"/v1/loans/100/liquidation-estimate?estimate_date=2024-06-01T12:00:00Z", "")
	if err := h.EstimateLiquidation(c); err != nil {
		t.Fatalf("EstimateLiquidation error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	want := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if gotAsOf == nil || !gotAsOf.Equal(want) {
		t.Fatalf("estimate date not forwarded: %v", gotAsOf)
	}
	var got liquidationUC.EstimateResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !got.CurrentValuationAmount.Equal(fixedpoint.FromUnits(3000)) {
		t.Fatalf("valuation = %s", got.CurrentValuationAmount)
	}
	if got.MarketProvider != "pending" {
		t.Fatalf("provider = %s", got.MarketProvider)
	}
}

func TestEstimateLiquidation_BadDateFormat(t *testing.T) {
	e := newEchoWithValidator()
	h := newLoanHandler(t, &loanmock.Repo{}, &loanmock.LiquidationRepo{}, &currencymock.Repo{})

	c, rec := loanRequest(e, stdhttp.MethodGet,
		"/v1/loans/100/liquidation-estimate?estimate_date=01-06-2024", "")
	if err := h.EstimateLiquidation(c); err != nil {
		t.Fatalf("EstimateLiquidation error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRequestLiquidation_Success(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		GetByIDForBorrowerFn: func(ctx context.Context, id, borrowerID int64) (*loanDomain.Loan, error) {
			return testLoan(), nil
		},
	}
	liqs := &loanmock.LiquidationRepo{
		GetByLoanIDFn: func(ctx context.Context, loanID int64) (*loanDomain.LoanLiquidation, error) {
			return nil, loanDomain.ErrLiquidationNotFound
		},
		CreateFn: func(ctx context.Context, l *loanDomain.LoanLiquidation) error { return nil },
	}
	currencies := &currencymock.Repo{
		GetByIDFn: func(ctx context.Context, id int64) (*currencyDomain.Currency, error) {
			return &currencyDomain.Currency{ID: 2, Symbol: "BTC"}, nil
		},
	}
	h := newLoanHandler(t, loans, liqs, currencies)

	c, rec := loanRequest(e, stdhttp.MethodPost, "/v1/loans/100/liquidations", "")
	if err := h.RequestLiquidation(c); err != nil {
		t.Fatalf("RequestLiquidation error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var got liquidationUC.RequestResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Status != string(loanDomain.LiquidationRequested) || !got.LiquidationTargetAmount.IsZero() {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestRequestLiquidation_DuplicateIs409(t *testing.T) {
	e := newEchoWithValidator()
	loans := &loanmock.Repo{
		GetByIDForBorrowerFn: func(ctx context.Context, id, borrowerID int64) (*loanDomain.Loan, error) {
			return testLoan(), nil
		},
	}
	liqs := &loanmock.LiquidationRepo{
		GetByLoanIDFn: func(ctx context.Context, loanID int64) (*loanDomain.LoanLiquidation, error) {
			return &loanDomain.LoanLiquidation{ID: 1, LoanID: loanID}, nil
		},
	}
	h := newLoanHandler(t, loans, liqs, &currencymock.Repo{})

	c, rec := loanRequest(e, stdhttp.MethodPost, "/v1/loans/100/liquidations", "")
	if err := h.RequestLiquidation(c); err != nil {
		t.Fatalf("RequestLiquidation error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestUpdateLiquidationTarget(t *testing.T) {
	newHandler := func(t *testing.T, updated **loanDomain.LoanLiquidation) *LoanHandler {
		liqs := &loanmock.LiquidationRepo{
			GetByLoanIDFn: func(ctx context.Context, loanID int64) (*loanDomain.LoanLiquidation, error) {
				return &loanDomain.LoanLiquidation{ID: 1, LoanID: loanID, Status: loanDomain.LiquidationRequested}, nil
			},
			UpdateTargetAmountFn: func(ctx context.Context, l *loanDomain.LoanLiquidation) error {
				*updated = l
				return nil
			},
		}
		return newLoanHandler(t, &loanmock.Repo{}, liqs, &currencymock.Repo{})
	}

	t.Run("finalizes target", func(t *testing.T) {
		e := newEchoWithValidator()
		var updated *loanDomain.LoanLiquidation
		h := newHandler(t, &updated)

		c, rec := loanRequest(e, stdhttp.MethodPut, "/v1/loans/100/liquidations/target-amount",
			`{"target_amount":"1450000000000000000000"}`)
		if err := h.UpdateLiquidationTarget(c); err != nil {
			t.Fatalf("UpdateLiquidationTarget error: %v", err)
		}
		if rec.Code != stdhttp.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
		if updated == nil || !updated.LiquidationTargetAmount.Equal(fixedpoint.FromUnits(1450)) {
			t.Fatalf("target not persisted: %+v", updated)
		}
	})

	t.Run("rejects non-integer target", func(t *testing.T) {
		e := newEchoWithValidator()
		var updated *loanDomain.LoanLiquidation
		h := newHandler(t, &updated)

		c, rec := loanRequest(e, stdhttp.MethodPut, "/v1/loans/100/liquidations/target-amount",
			`{"target_amount":"14.5"}`)
		if err := h.UpdateLiquidationTarget(c); err != nil {
			t.Fatalf("UpdateLiquidationTarget error: %v", err)
		}
		if rec.Code != stdhttp.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", rec.Code)
		}
		if updated != nil {
			t.Fatal("must not persist on validation failure")
		}
	})
}
