package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/repo"
)

type OrderService struct {
	Repo *repo.GormRepo
}

func NewOrderService(r *repo.GormRepo) *OrderService {
	return &OrderService{Repo: r}
}

func (s *OrderService) FindAll(ctx context.Context) ([]models.Order, error) {
	return s.Repo.GetOrders(ctx)
}

func (s *OrderService) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) FindByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	return s.Repo.GetOrdersByCustomer(ctx, customerID)
}

func (s *OrderService) FindWithItemsByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	return s.Repo.GetOrdersWithItemsByCustomer(ctx, customerID)
}

func (s *OrderService) FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}
	return s.Repo.GetOrdersByStatus(ctx, status)
}

func (s *OrderService) FindByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := s.Repo.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: order %q", ErrNotFound, orderNumber)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}
	return s.Repo.GetOrdersByDateRange(ctx, start, end)
}

// CalculateTotal sums the subtotals of the order's in-memory items. It
// never touches storage.
func (s *OrderService) CalculateTotal(order *models.Order) (decimal.Decimal, error) {
	if order == nil {
		return decimal.Zero, fmt.Errorf("%w: order is required", ErrValidation)
	}
	total := decimal.Zero
	for _, item := range order.Items {
		total = total.Add(item.Subtotal)
	}
	return total, nil
}

// CheckProductStock reports whether the product exists and has at least
// quantity units in stock.
func (s *OrderService) CheckProductStock(ctx context.Context, productID uint, quantity int) (bool, error) {
	product, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if repo.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return product.Stock >= quantity, nil
}

// Save persists the order, always recomputing the total server-side.
// For persisted orders the total comes from the stored item rows, so a
// client-supplied value is never trusted.
func (s *OrderService) Save(ctx context.Context, order *models.Order) error {
	if order == nil {
		return fmt.Errorf("%w: order is required", ErrValidation)
	}
	if order.CustomerID == 0 {
		return fmt.Errorf("%w: customer is required", ErrValidation)
	}
	exists, err := s.Repo.CustomerExists(ctx, order.CustomerID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: customer %d does not exist", ErrValidation, order.CustomerID)
	}

	if order.ID == 0 {
		if strings.TrimSpace(order.OrderNumber) == "" {
			order.OrderNumber = generateOrderNumber()
		}
		taken, err := s.Repo.OrderExistsByNumber(ctx, order.OrderNumber)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: order number %q already exists", ErrValidation, order.OrderNumber)
		}
		if order.Status == "" {
			order.Status = models.OrderStatusPending
		}
		if order.OrderDate.IsZero() {
			order.OrderDate = time.Now().UTC()
		}
	}
	if !order.Status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, order.Status)
	}

	return s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if order.ID != 0 {
			items, err := tx.GetOrderItemsByOrder(ctx, order.ID)
			if err != nil {
				return err
			}
			order.Items = items
		}
		total := decimal.Zero
		for _, item := range order.Items {
			total = total.Add(item.Subtotal)
		}
		order.TotalAmount = total
		return tx.SaveOrder(ctx, order)
	})
}

// UpdateStatus sets the status unconditionally; only Cancel guards the
// transition graph.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}
	order, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Status = status
	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel marks the order CANCELLED. Delivered orders cannot be
// cancelled. Stock is untouched: placement never decrements it, so
// there is nothing to restore.
func (s *OrderService) Cancel(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == models.OrderStatusDelivered {
		return nil, fmt.Errorf("%w: cannot cancel a delivered order", ErrValidation)
	}
	order.Status = models.OrderStatusCancelled
	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	exists, err := s.Repo.OrderExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: order %d", ErrNotFound, id)
	}
	return s.Repo.DeleteOrder(ctx, id)
}

func (s *OrderService) Count(ctx context.Context) (int64, error) {
	return s.Repo.CountOrders(ctx)
}

func generateOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
