package repository

import (
	"context"

	"gorm.io/gorm"

	"hopyfy/internal/domain/model"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) ListAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category

	err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
