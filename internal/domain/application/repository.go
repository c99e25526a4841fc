package application

import "context"

// ListFilter narrows List to a borrower and optionally one status.
// Page and Limit are assumed already clamped by the caller.
type ListFilter struct {
	BorrowerID int64
	Status     *Status
	Page       int
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	GetByID(ctx context.Context, id int64) (*LoanApplication, error)
	// GetByIDForBorrower returns ErrNotFound for both a missing row and
	// an ownership mismatch.
	GetByIDForBorrower(ctx context.Context, id, borrowerID int64) (*LoanApplication, error)
	Save(ctx context.Context, a *LoanApplication) error
	// List returns one page plus the unpaginated total.
	List(ctx context.Context, f ListFilter) ([]LoanApplication, int64, error)
}
