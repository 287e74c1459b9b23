package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/repo"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func NewProductService(r *repo.GormRepo) *ProductService {
	return &ProductService{Repo: r}
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *ProductService) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) FindByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	return s.Repo.GetProductsByCategory(ctx, categoryID)
}

func (s *ProductService) FindByCategoryOrderByPrice(ctx context.Context, categoryID uint) ([]models.Product, error) {
	return s.Repo.GetProductsByCategoryOrderByPrice(ctx, categoryID)
}

func (s *ProductService) SearchByName(ctx context.Context, q string) ([]models.Product, error) {
	return s.Repo.SearchProductsByName(ctx, q)
}

// FindByPriceRange returns products with min <= price <= max.
func (s *ProductService) FindByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]models.Product, error) {
	if min.GreaterThan(max) {
		return nil, fmt.Errorf("%w: min price above max price", ErrValidation)
	}
	return s.Repo.GetProductsByPriceRange(ctx, min, max)
}

func (s *ProductService) FindInStock(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProductsInStock(ctx)
}

func (s *ProductService) FindTopSelling(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be > 0", ErrValidation)
	}
	return s.Repo.GetTopSellingProducts(ctx, limit)
}

func (s *ProductService) Save(ctx context.Context, product *models.Product) error {
	if err := s.validate(ctx, product); err != nil {
		return err
	}
	return s.Repo.SaveProduct(ctx, product)
}

func (s *ProductService) UpdateStock(ctx context.Context, id uint, newStock int) (*models.Product, error) {
	if newStock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}
	product, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Stock = newStock
	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdatePrice(ctx context.Context, id uint, newPrice decimal.Decimal) (*models.Product, error) {
	if !newPrice.IsPositive() {
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrValidation)
	}
	product, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Price = newPrice
	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete refuses to remove a product that order items still reference.
// Removing the whole subtree is only done through the owning category.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	exists, err := s.Repo.ProductExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: product %d", ErrNotFound, id)
	}

	refs, err := s.Repo.CountOrderItemsByProduct(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: product %d is referenced by %d order item(s)", ErrConflict, id, refs)
	}

	return s.Repo.DeleteProduct(ctx, id)
}

func (s *ProductService) Count(ctx context.Context) (int64, error) {
	return s.Repo.CountProducts(ctx)
}

func (s *ProductService) validate(ctx context.Context, product *models.Product) error {
	if product == nil {
		return fmt.Errorf("%w: product is required", ErrValidation)
	}
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if !product.Price.IsPositive() {
		return fmt.Errorf("%w: price must be greater than zero", ErrValidation)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}
	if product.CategoryID == 0 {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	exists, err := s.Repo.CategoryExists(ctx, product.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: category %d does not exist", ErrValidation, product.CategoryID)
	}
	return nil
}
