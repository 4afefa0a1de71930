package repository

import (
	"context"

	"gorm.io/gorm"

	"confportal/internal/domain"
)

type AbstractRepository struct {
	db *gorm.DB
}

func NewAbstractRepository(db *gorm.DB) *AbstractRepository {
	return &AbstractRepository{db: db}
}

func (r *AbstractRepository) Create(ctx context.Context, a *domain.Abstract) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AbstractRepository) GetByID(ctx context.Context, id int64) (*domain.Abstract, error) {
	var a domain.Abstract
	if err := r.db.WithContext(ctx).
		Preload("Authors", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AbstractRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Abstract, error) {
	var abstracts []domain.Abstract
	err := r.db.WithContext(ctx).
		Preload("Authors", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&abstracts).Error
	return abstracts, err
}

// Update replaces the author list wholesale together with the abstract fields,
// so a half-updated author list is never observable.
func (r *AbstractRepository) Update(ctx context.Context, a *domain.Abstract) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Abstract{}).
			Where("id = ?", a.ID).
			Updates(map[string]any{
				"title":  a.Title,
				"track":  a.Track,
				"body":   a.Body,
				"status": a.Status,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("abstract_id = ?", a.ID).Delete(&domain.AbstractAuthor{}).Error; err != nil {
			return err
		}
		for i := range a.Authors {
			a.Authors[i].ID = 0
			a.Authors[i].AbstractID = a.ID
			a.Authors[i].Position = i
		}
		if len(a.Authors) == 0 {
			return nil
		}
		return tx.Create(&a.Authors).Error
	})
}

func (r *AbstractRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("abstract_id = ?", id).Delete(&domain.AbstractAuthor{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Abstract{}, id).Error
	})
}
