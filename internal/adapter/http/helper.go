package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	applicationDomain "lendhub-backend/internal/domain/application"
	currencyDomain "lendhub-backend/internal/domain/currency"
	loanDomain "lendhub-backend/internal/domain/loan"
)

// userID reads the authenticated caller injected by the gateway. The
// auth layer itself lives outside this service.
func userID(c echo.Context) (int64, error) {
	raw := c.Request().Header.Get("X-User-Id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("missing or invalid X-User-Id")
	}
	return id, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// domainError maps sentinel errors to stable HTTP codes. Ownership
// mismatches come out as 404 on purpose.
func domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, applicationDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFoundOrForbidden),
		errors.Is(err, loanDomain.ErrLiquidationNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrLiquidationAlreadyRequested):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, applicationDomain.ErrInvalidTransition),
		errors.Is(err, loanDomain.ErrInvalidStatus):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, currencyDomain.ErrPairNotFound),
		errors.Is(err, currencyDomain.ErrRateNotFound):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
