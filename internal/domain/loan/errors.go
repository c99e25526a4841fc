package loan

import "errors"

var (
	// ErrNotFoundOrForbidden covers both a missing loan and an ownership
	// mismatch; callers must not be able to tell the two apart.
	ErrNotFoundOrForbidden = errors.New("loan not found")

	ErrInvalidStatus = errors.New("invalid loan status for this operation")

	ErrLiquidationAlreadyRequested = errors.New("liquidation already requested for this loan")

	ErrLiquidationNotFound = errors.New("loan liquidation not found")
)
