package mysql

import (
	"context"
	"errors"

	invoiceDomain "lendhub-backend/internal/domain/invoice"

	"gorm.io/gorm"
)

type InvoiceRepository struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository { return &InvoiceRepository{db: db} }

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoiceDomain.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*invoiceDomain.Invoice, error) {
	var out invoiceDomain.Invoice
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, invoiceDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *InvoiceRepository) GetActiveByReference(ctx context.Context, referenceID int64, typ invoiceDomain.Type) (*invoiceDomain.Invoice, error) {
	var out invoiceDomain.Invoice
	res := r.db.WithContext(ctx).
		Where("reference_id = ? AND invoice_type = ? AND status IN ?",
			referenceID, typ,
			[]invoiceDomain.Status{invoiceDomain.StatusPending, invoiceDomain.StatusPartiallyPaid}).
		Order("id DESC").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, invoiceDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *InvoiceRepository) Save(ctx context.Context, inv *invoiceDomain.Invoice) error {
	return r.db.WithContext(ctx).Save(inv).Error
}
