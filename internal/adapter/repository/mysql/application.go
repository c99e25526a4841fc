package mysql

import (
	"context"
	"errors"

	applicationDomain "lendhub-backend/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *applicationDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*applicationDomain.LoanApplication, error) {
	var out applicationDomain.LoanApplication
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, applicationDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ApplicationRepository) GetByIDForBorrower(ctx context.Context, id, borrowerID int64) (*applicationDomain.LoanApplication, error) {
	var out applicationDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Where("id = ? AND borrower_id = ?", id, borrowerID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		// Ownership mismatch is indistinguishable from a missing row.
		return nil, applicationDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *applicationDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) List(ctx context.Context, f applicationDomain.ListFilter) ([]applicationDomain.LoanApplication, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&applicationDomain.LoanApplication{}).
		Where("borrower_id = ?", f.BorrowerID)
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []applicationDomain.LoanApplication
	err := q.Order("applied_date DESC").Order("id DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
