package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	applicationDomain "lendhub-backend/internal/domain/application"
	applicationUC "lendhub-backend/internal/usecase/application"
)

type ApplicationHandler struct{ uc *applicationUC.Usecase }

func NewApplicationHandler(uc *applicationUC.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	PrincipalBlockchainKey  string `json:"principal_blockchain_key"  validate:"required"`
	PrincipalTokenID        string `json:"principal_token_id"        validate:"required"`
	PrincipalAmount         string `json:"principal_amount"          validate:"required,amount"`
	CollateralBlockchainKey string `json:"collateral_blockchain_key" validate:"required"`
	CollateralTokenID       string `json:"collateral_token_id"       validate:"required"`
	CollateralAmount        string `json:"collateral_amount"         validate:"required,amount"`
	MinLtvRatio             string `json:"min_ltv_ratio"             validate:"required,ratio"`
	MaxLtvRatio             string `json:"max_ltv_ratio"             validate:"required,ratio"`
	TermDays                int    `json:"term_days"                 validate:"required,gte=1,lte=3650"`
	LiquidationMode         string `json:"liquidation_mode"          validate:"required,oneof=full partial"`
	CollateralWallet        string `json:"collateral_wallet_address" validate:"required"`
	CollateralDerivation    string `json:"collateral_derivation_path"`
	ExpiredDate             string `json:"expired_date"              validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	borrowerID, err := userID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	expired, _ := time.Parse(time.RFC3339, req.ExpiredDate)
	now := time.Now().UTC()
	if expired.Before(now) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "expired_date must be in the future"})
	}

	dto, err := h.uc.Create(c.Request().Context(), applicationUC.CreateInput{
		BorrowerID:               borrowerID,
		PrincipalBlockchainKey:   req.PrincipalBlockchainKey,
		PrincipalTokenID:         req.PrincipalTokenID,
		PrincipalAmount:          decimal.RequireFromString(req.PrincipalAmount),
		CollateralBlockchainKey:  req.CollateralBlockchainKey,
		CollateralTokenID:        req.CollateralTokenID,
		CollateralAmount:         decimal.RequireFromString(req.CollateralAmount),
		MinLtvRatio:              decimal.RequireFromString(req.MinLtvRatio),
		MaxLtvRatio:              decimal.RequireFromString(req.MaxLtvRatio),
		TermDays:                 req.TermDays,
		LiquidationMode:          applicationDomain.LiquidationMode(req.LiquidationMode),
		CollateralWalletAddress:  req.CollateralWallet,
		CollateralDerivationPath: req.CollateralDerivation,
		AppliedDate:              now,
		ExpiredDate:              expired,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type modifyApplicationReq struct {
	ExpiredDate string `json:"expired_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func (h *ApplicationHandler) Modify(c echo.Context) error {
	borrowerID, err := userID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	appID, err := pathID(c, "application_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id"})
	}
	var req modifyApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	expired, _ := time.Parse(time.RFC3339, req.ExpiredDate)

	dto, err := h.uc.Modify(c.Request().Context(), applicationUC.ModifyInput{
		BorrowerID:    borrowerID,
		ApplicationID: appID,
		ExpiredDate:   expired,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type cancelApplicationReq struct {
	Reason string `json:"reason" validate:"required,max=128"`
}

func (h *ApplicationHandler) Cancel(c echo.Context) error {
	borrowerID, err := userID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	appID, err := pathID(c, "application_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id"})
	}
	var req cancelApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Cancel(c.Request().Context(), applicationUC.CancelInput{
		BorrowerID:    borrowerID,
		ApplicationID: appID,
		Reason:        req.Reason,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) List(c echo.Context) error {
	borrowerID, err := userID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	in := applicationUC.ListInput{
		BorrowerID: borrowerID,
		Sort:       c.QueryParam("sort"),
	}
	in.Page, _ = strconv.Atoi(c.QueryParam("page"))
	in.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if s := c.QueryParam("status"); s != "" {
		st := applicationDomain.Status(s)
		in.Status = &st
	}

	res, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
