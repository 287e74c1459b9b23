package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
)

func TestOrderSaveValidation(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	require.ErrorIs(t, svc.Save(ctx, nil), ErrValidation)
	require.ErrorIs(t, svc.Save(ctx, &models.Order{}), ErrValidation)
	require.ErrorIs(t, svc.Save(ctx, &models.Order{CustomerID: 999}), ErrValidation)
}

func TestOrderSaveDefaultsAndNumberGeneration(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	customer := seedCustomer(t, r, "Jane", "Doe", "jane@example.com")

	order := &models.Order{CustomerID: customer.ID}
	require.NoError(t, svc.Save(ctx, order))
	require.NotEmpty(t, order.OrderNumber)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.False(t, order.OrderDate.IsZero())
	requireDecimalEqual(t, "0", order.TotalAmount)
}

func TestOrderDuplicateNumberRejected(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	customer := seedCustomer(t, r, "Jane", "Doe", "jane@example.com")

	first := &models.Order{CustomerID: customer.ID, OrderNumber: "ORD-0001"}
	require.NoError(t, svc.Save(ctx, first))

	second := &models.Order{CustomerID: customer.ID, OrderNumber: "ORD-0001"}
	require.ErrorIs(t, svc.Save(ctx, second), ErrValidation)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestOrderSaveOverridesClientTotal(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	customer := seedCustomer(t, r, "Jane", "Doe", "jane@example.com")
	order := &models.Order{
		CustomerID:  customer.ID,
		TotalAmount: decimal.RequireFromString("9999.99"),
	}
	require.NoError(t, svc.Save(ctx, order))
	requireDecimalEqual(t, "0", order.TotalAmount)
}

func TestOrderCalculateTotal(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)

	_, err := svc.CalculateTotal(nil)
	require.ErrorIs(t, err, ErrValidation)

	total, err := svc.CalculateTotal(&models.Order{})
	require.NoError(t, err)
	requireDecimalEqual(t, "0", total)

	order := &models.Order{Items: []models.OrderItem{
		{Subtotal: decimal.RequireFromString("10.50")},
		{Subtotal: decimal.RequireFromString("4.25")},
	}}
	total, err = svc.CalculateTotal(order)
	require.NoError(t, err)
	requireDecimalEqual(t, "14.75", total)
}

func TestOrderCheckProductStock(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	category := seedCategory(t, r, "Electronics")
	product := seedProduct(t, r, "Mouse", "79.99", 3, category.ID)

	ok, err := svc.CheckProductStock(ctx, product.ID, 3)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.CheckProductStock(ctx, product.ID, 4)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.CheckProductStock(ctx, 999, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOrderUpdateStatusUnconditional(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	customer := seedCustomer(t, r, "Jane", "Doe", "jane@example.com")
	order := seedOrder(t, r, customer.ID)

	// no transition graph: any valid status may be set directly
	updated, err := svc.UpdateStatus(ctx, order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusDelivered, updated.Status)

	updated, err = svc.UpdateStatus(ctx, order.ID, models.OrderStatusPending)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, updated.Status)

	_, err = svc.UpdateStatus(ctx, order.ID, models.OrderStatus("BOGUS"))
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateStatus(ctx, 999, models.OrderStatusShipped)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderCancel(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	customer := seedCustomer(t, r, "Jane", "Doe", "jane@example.com")
	order := seedOrder(t, r, customer.ID)

	cancelled, err := svc.Cancel(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	_, err = svc.Cancel(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderCancelDeliveredRejected(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	customer := seedCustomer(t, r, "Jane", "Doe", "jane@example.com")
	order := seedOrder(t, r, customer.ID)

	_, err := svc.UpdateStatus(ctx, order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, order.ID)
	require.ErrorIs(t, err, ErrValidation)

	got, err := svc.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusDelivered, got.Status)
}

func TestOrderDeleteCascadesToItems(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	category := seedCategory(t, r, "Electronics")
	product := seedProduct(t, r, "Mouse", "79.99", 50, category.ID)
	customer := seedCustomer(t, r, "Jane", "Doe", "jane@example.com")
	order := seedOrder(t, r, customer.ID)
	item := seedOrderItem(t, r, order.ID, product.ID, 1, "79.99")

	require.NoError(t, svc.Delete(ctx, order.ID))

	_, err := svc.FindByID(ctx, order.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = NewOrderItemService(r).FindByID(ctx, item.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, 999), ErrNotFound)
}

func TestOrderFindByNumberAndStatus(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	customer := seedCustomer(t, r, "Jane", "Doe", "jane@example.com")
	order := &models.Order{CustomerID: customer.ID, OrderNumber: "ORD-XYZ"}
	require.NoError(t, svc.Save(ctx, order))

	got, err := svc.FindByOrderNumber(ctx, "ORD-XYZ")
	require.NoError(t, err)
	require.Equal(t, order.ID, got.ID)

	_, err = svc.FindByOrderNumber(ctx, "ORD-NOPE")
	require.ErrorIs(t, err, ErrNotFound)

	pending, err := svc.FindByStatus(ctx, models.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = svc.FindByStatus(ctx, models.OrderStatus("BOGUS"))
	require.ErrorIs(t, err, ErrValidation)
}

func TestOrderFindByDateRange(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	customer := seedCustomer(t, r, "Jane", "Doe", "jane@example.com")
	old := &models.Order{CustomerID: customer.ID, OrderDate: time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, svc.Save(ctx, old))
	recent := &models.Order{CustomerID: customer.ID, OrderDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, svc.Save(ctx, recent))

	found, err := svc.FindByDateRange(ctx,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, recent.ID, found[0].ID)

	_, err = svc.FindByDateRange(ctx,
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrValidation)
}

func TestOrderFindWithItemsByCustomer(t *testing.T) {
	r := newTestRepo(t)
	svc := NewOrderService(r)
	ctx := context.Background()

	category := seedCategory(t, r, "Electronics")
	product := seedProduct(t, r, "Mouse", "79.99", 50, category.ID)
	customer := seedCustomer(t, r, "Jane", "Doe", "jane@example.com")
	order := seedOrder(t, r, customer.ID)
	seedOrderItem(t, r, order.ID, product.ID, 2, "79.99")

	orders, err := svc.FindWithItemsByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	require.Equal(t, 2, orders[0].Items[0].Quantity)
}
