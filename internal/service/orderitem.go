package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/repo"
)

type OrderItemService struct {
	Repo *repo.GormRepo
}

func NewOrderItemService(r *repo.GormRepo) *OrderItemService {
	return &OrderItemService{Repo: r}
}

func (s *OrderItemService) FindAll(ctx context.Context) ([]models.OrderItem, error) {
	return s.Repo.GetOrderItems(ctx)
}

func (s *OrderItemService) FindByID(ctx context.Context, id uint) (*models.OrderItem, error) {
	item, err := s.Repo.GetOrderItem(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: order item %d", ErrNotFound, id)
		}
		return nil, err
	}
	return item, nil
}

func (s *OrderItemService) FindByOrder(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	return s.Repo.GetOrderItemsByOrder(ctx, orderID)
}

func (s *OrderItemService) FindByProduct(ctx context.Context, productID uint) ([]models.OrderItem, error) {
	return s.Repo.GetOrderItemsByProduct(ctx, productID)
}

// CalculateSubtotal is the pure line-total function: quantity times
// unit price, zero when the quantity is not positive.
func (s *OrderItemService) CalculateSubtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Save validates the item, recomputes its subtotal, persists it, and
// refreshes the parent order's total in a single transaction.
func (s *OrderItemService) Save(ctx context.Context, item *models.OrderItem) error {
	if item == nil {
		return fmt.Errorf("%w: order item is required", ErrValidation)
	}
	if item.OrderID == 0 {
		return fmt.Errorf("%w: order is required", ErrValidation)
	}
	if item.ProductID == 0 {
		return fmt.Errorf("%w: product is required", ErrValidation)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	}
	if item.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price cannot be negative", ErrValidation)
	}

	return s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		exists, err := tx.OrderExists(ctx, item.OrderID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: order %d does not exist", ErrValidation, item.OrderID)
		}

		product, err := tx.GetProduct(ctx, item.ProductID)
		if err != nil {
			if repo.IsNotFound(err) {
				return fmt.Errorf("%w: product %d does not exist", ErrValidation, item.ProductID)
			}
			return err
		}
		if product.Stock < item.Quantity {
			return fmt.Errorf("%w: insufficient stock for product %q: available %d, requested %d",
				ErrValidation, product.Name, product.Stock, item.Quantity)
		}

		item.Subtotal = s.CalculateSubtotal(item.Quantity, item.UnitPrice)
		if err := tx.SaveOrderItem(ctx, item); err != nil {
			return err
		}
		return tx.RecalculateOrderTotal(ctx, item.OrderID)
	})
}

func (s *OrderItemService) UpdateQuantity(ctx context.Context, id uint, newQuantity int) (*models.OrderItem, error) {
	if newQuantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	}

	item, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		product, err := tx.GetProduct(ctx, item.ProductID)
		if err != nil && !repo.IsNotFound(err) {
			return err
		}
		if product != nil && product.Stock < newQuantity {
			return fmt.Errorf("%w: insufficient stock: available %d, requested %d",
				ErrValidation, product.Stock, newQuantity)
		}

		item.Quantity = newQuantity
		item.Subtotal = s.CalculateSubtotal(item.Quantity, item.UnitPrice)
		if err := tx.SaveOrderItem(ctx, item); err != nil {
			return err
		}
		return tx.RecalculateOrderTotal(ctx, item.OrderID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *OrderItemService) Delete(ctx context.Context, id uint) error {
	item, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	return s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if err := tx.DeleteOrderItem(ctx, id); err != nil {
			return err
		}
		return tx.RecalculateOrderTotal(ctx, item.OrderID)
	})
}

func (s *OrderItemService) Count(ctx context.Context) (int64, error) {
	return s.Repo.CountOrderItems(ctx)
}

func (s *OrderItemService) CountByOrder(ctx context.Context, orderID uint) (int64, error) {
	return s.Repo.CountOrderItemsByOrder(ctx, orderID)
}
