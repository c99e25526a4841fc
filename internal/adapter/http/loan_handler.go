package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	liquidationUC "lendhub-backend/internal/usecase/liquidation"
	repaymentUC "lendhub-backend/internal/usecase/repayment"
)

type LoanHandler struct {
	repayments   *repaymentUC.Usecase
	liquidations *liquidationUC.Usecase
}

func NewLoanHandler(repayments *repaymentUC.Usecase, liquidations *liquidationUC.Usecase) *LoanHandler {
	return &LoanHandler{repayments: repayments, liquidations: liquidations}
}

func (h *LoanHandler) Repay(c echo.Context) error {
	borrowerID, loanID, errResp := h.loanScope(c)
	if errResp != nil {
		return errResp
	}
	res, err := h.repayments.Repay(c.Request().Context(), repaymentUC.RepayInput{
		BorrowerID:    borrowerID,
		LoanID:        loanID,
		RepaymentDate: time.Now().UTC(),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *LoanHandler) RepayEarly(c echo.Context) error {
	borrowerID, loanID, errResp := h.loanScope(c)
	if errResp != nil {
		return errResp
	}
	res, err := h.repayments.RepayEarly(c.Request().Context(), repaymentUC.RepayInput{
		BorrowerID:    borrowerID,
		LoanID:        loanID,
		RepaymentDate: time.Now().UTC(),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *LoanHandler) Amounts(c echo.Context) error {
	borrowerID, loanID, errResp := h.loanScope(c)
	if errResp != nil {
		return errResp
	}
	res, err := h.repayments.LoanAmounts(c.Request().Context(), borrowerID, loanID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LoanHandler) EstimateLiquidation(c echo.Context) error {
	borrowerID, loanID, errResp := h.loanScope(c)
	if errResp != nil {
		return errResp
	}
	estimateDate := time.Now().UTC()
	if raw := c.QueryParam("estimate_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "estimate_date must be RFC3339"})
		}
		estimateDate = t
	}
	res, err := h.liquidations.Estimate(c.Request().Context(), liquidationUC.EstimateInput{
		BorrowerID:   borrowerID,
		LoanID:       loanID,
		EstimateDate: estimateDate,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LoanHandler) RequestLiquidation(c echo.Context) error {
	borrowerID, loanID, errResp := h.loanScope(c)
	if errResp != nil {
		return errResp
	}
	res, err := h.liquidations.Request(c.Request().Context(), liquidationUC.RequestInput{
		BorrowerID: borrowerID,
		LoanID:     loanID,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

type updateTargetReq struct {
	TargetAmount string `json:"target_amount" validate:"required,amount"`
}

// UpdateLiquidationTarget is the system-facing finalization hook; the
// gateway only routes the valuation pipeline here.
func (h *LoanHandler) UpdateLiquidationTarget(c echo.Context) error {
	loanID, err := pathID(c, "loan_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	var req updateTargetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	err = h.liquidations.UpdateTargetAmount(c.Request().Context(), liquidationUC.UpdateTargetInput{
		LoanID:       loanID,
		TargetAmount: decimal.RequireFromString(req.TargetAmount),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) loanScope(c echo.Context) (borrowerID, loanID int64, errResp error) {
	borrowerID, err := userID(c)
	if err != nil {
		return 0, 0, c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	loanID, err = pathID(c, "loan_id")
	if err != nil {
		return 0, 0, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	return borrowerID, loanID, nil
}
