package repository

import (
	"context"

	"gorm.io/gorm"

	"confportal/internal/domain"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*domain.Registration, error) {
	var reg domain.Registration
	if err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Category").
		First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Registration, error) {
	var regs []domain.Registration
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&regs).Error
	return regs, err
}

// UpdateApplicantFields only touches form fields, never the payment columns.
func (r *RegistrationRepository) UpdateApplicantFields(ctx context.Context, id int64, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&domain.Registration{}).
		Where("id = ?", id).
		Updates(updates).Error
}
