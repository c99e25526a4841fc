package mysql

import (
	"context"

	"lendhub-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// WithinTx binds every repository to one transaction. gorm commits when
// fn returns nil and rolls back otherwise; fn's error is returned
// unmodified either way, and the connection goes back to the pool on
// both paths.
func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Applications: &ApplicationRepository{db: tx},
			Invoices:     &InvoiceRepository{db: tx},
			Loans:        &LoanRepository{db: tx},
			Repayments:   &RepaymentRepository{db: tx},
			Liquidations: &LiquidationRepository{db: tx},
			Currencies:   &CurrencyRepository{db: tx},
		}
		return fn(r)
	})
}
