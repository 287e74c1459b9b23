package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
)

func (r *GormRepo) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) CategoryExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) CategoryExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) SaveCategory(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Save(category).Error
}

// DeleteCategory removes the category together with its products and
// their order items. The storage-level cascade only covers the direct
// products; order items referencing those products are removed here so
// the behavior is the same on every backend.
func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(tx *GormRepo) error {
		var productIDs []uint
		if err := tx.DB.Model(&models.Product{}).Where("category_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return err
		}
		if len(productIDs) > 0 {
			var orderIDs []uint
			if err := tx.DB.Model(&models.OrderItem{}).Where("product_id IN ?", productIDs).
				Distinct().Pluck("order_id", &orderIDs).Error; err != nil {
				return err
			}
			if err := tx.DB.Where("product_id IN ?", productIDs).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			for _, orderID := range orderIDs {
				if err := tx.RecalculateOrderTotal(ctx, orderID); err != nil {
					return err
				}
			}
			if err := tx.DB.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}

		res := tx.DB.Delete(&models.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormRepo) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
