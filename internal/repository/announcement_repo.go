package repository

import (
	"context"

	"gorm.io/gorm"

	"confportal/internal/domain"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AnnouncementRepository) List(ctx context.Context, limit int) ([]domain.Announcement, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var items []domain.Announcement
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
