package repo

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
)

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) GetProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Where("category_id = ?", categoryID).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) GetProductsByCategoryOrderByPrice(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Where("category_id = ?", categoryID).Order("price ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProductsByName matches a case-insensitive substring. LOWER+LIKE
// instead of ILIKE so the query behaves the same on sqlite.
func (r *GormRepo) SearchProductsByName(ctx context.Context, q string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + strings.ToLower(q) + "%"
	if err := r.DB.WithContext(ctx).Where("LOWER(name) LIKE ?", pattern).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) GetProductsByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Where("price >= ? AND price <= ?", min, max).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) GetProductsInStock(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Where("stock > 0").Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetTopSellingProducts ranks products by total ordered quantity,
// descending, ties broken by id.
func (r *GormRepo) GetTopSellingProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.WithContext(ctx).Raw(`
		SELECT p.* FROM products p
		LEFT JOIN order_items oi ON oi.product_id = p.id
		GROUP BY p.id
		ORDER BY COALESCE(SUM(oi.quantity), 0) DESC, p.id ASC
		LIMIT ?`, limit).Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) ProductExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) SaveProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Save(product).Error
}

func (r *GormRepo) CountOrderItemsByProduct(ctx context.Context, productID uint) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
