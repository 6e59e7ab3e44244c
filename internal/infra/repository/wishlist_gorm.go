package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hopyfy/internal/domain/model"
	repo "hopyfy/internal/repository"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

func (r *WishlistGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	var items []model.WishlistItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.WishlistItem{}, err
	}

	return items, nil
}

func (r *WishlistGormRepository) GetOrCreate(ctx context.Context, userID int64, productID int64) (model.WishlistItem, error) {
	var item model.WishlistItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Where("user_id = ? AND product_id = ?", userID, productID).
			First(&item).Error
		if findErr == nil {
			return nil
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		newItem := model.WishlistItem{
			UserID:    userID,
			ProductID: productID,
			AddedAt:   time.Now(),
		}
		if err := tx.Create(&newItem).Error; err != nil {
			// Lost a race against a concurrent insert of the same pair.
			retryErr := tx.
				Where("user_id = ? AND product_id = ?", userID, productID).
				First(&item).Error
			if retryErr == nil {
				return nil
			}
			return err
		}

		item = newItem
		return nil
	})

	if err != nil {
		return model.WishlistItem{}, err
	}
	return item, nil
}

func (r *WishlistGormRepository) DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
