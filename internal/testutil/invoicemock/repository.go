package invoicemock

import (
	"context"

	domain "lendhub-backend/internal/domain/invoice"
)

// Repo is a function-backed mock satisfying invoice.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, inv *domain.Invoice) error
	GetByIDFn              func(ctx context.Context, id int64) (*domain.Invoice, error)
	GetActiveByReferenceFn func(ctx context.Context, referenceID int64, typ domain.Type) (*domain.Invoice, error)
	SaveFn                 func(ctx context.Context, inv *domain.Invoice) error
}

func (m *Repo) Create(ctx context.Context, inv *domain.Invoice) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActiveByReference(ctx context.Context, referenceID int64, typ domain.Type) (*domain.Invoice, error) {
	if m.GetActiveByReferenceFn != nil {
		return m.GetActiveByReferenceFn(ctx, referenceID, typ)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, inv *domain.Invoice) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}
