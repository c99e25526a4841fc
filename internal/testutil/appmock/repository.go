package appmock

import (
	"context"

	domain "lendhub-backend/internal/domain/application"
)

// Repo is a function-backed mock satisfying application.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, a *domain.LoanApplication) error
	GetByIDFn            func(ctx context.Context, id int64) (*domain.LoanApplication, error)
	GetByIDForBorrowerFn func(ctx context.Context, id, borrowerID int64) (*domain.LoanApplication, error)
	SaveFn               func(ctx context.Context, a *domain.LoanApplication) error
	ListFn               func(ctx context.Context, f domain.ListFilter) ([]domain.LoanApplication, int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.LoanApplication, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForBorrower(ctx context.Context, id, borrowerID int64) (*domain.LoanApplication, error) {
	if m.GetByIDForBorrowerFn != nil {
		return m.GetByIDForBorrowerFn(ctx, id, borrowerID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, a *domain.LoanApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.LoanApplication, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}
