package invoice

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id int64) (*Invoice, error)
	// GetActiveByReference finds the open invoice of a type within a
	// loan/application scope; at most one exists at a time.
	GetActiveByReference(ctx context.Context, referenceID int64, typ Type) (*Invoice, error)
	Save(ctx context.Context, inv *Invoice) error
}
