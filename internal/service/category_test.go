package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
)

func TestCategorySaveValidation(t *testing.T) {
	r := newTestRepo(t)
	svc := NewCategoryService(r)
	ctx := context.Background()

	err := svc.Save(ctx, nil)
	require.ErrorIs(t, err, ErrValidation)

	err = svc.Save(ctx, &models.Category{Name: "   "})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCategoryDuplicateNameRejected(t *testing.T) {
	r := newTestRepo(t)
	svc := NewCategoryService(r)
	ctx := context.Background()

	seedCategory(t, r, "Electronics")

	err := svc.Save(ctx, &models.Category{Name: "Electronics"})
	require.ErrorIs(t, err, ErrValidation)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestCategoryUpdateKeepsName(t *testing.T) {
	r := newTestRepo(t)
	svc := NewCategoryService(r)
	ctx := context.Background()

	category := seedCategory(t, r, "Books")
	category.Description = "printed matter"
	require.NoError(t, svc.Save(ctx, category))

	got, err := svc.FindByName(ctx, "Books")
	require.NoError(t, err)
	require.Equal(t, "printed matter", got.Description)
	require.Equal(t, category.ID, got.ID)
}

func TestCategoryFindByIDNotFound(t *testing.T) {
	r := newTestRepo(t)
	svc := NewCategoryService(r)

	_, err := svc.FindByID(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryExistsByName(t *testing.T) {
	r := newTestRepo(t)
	svc := NewCategoryService(r)
	ctx := context.Background()

	seedCategory(t, r, "Garden")

	exists, err := svc.ExistsByName(ctx, "Garden")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = svc.ExistsByName(ctx, "Kitchen")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestCategoryDeleteNotFound(t *testing.T) {
	r := newTestRepo(t)
	svc := NewCategoryService(r)

	err := svc.Delete(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryDeleteCascadesToProductsAndItems(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	category := seedCategory(t, r, "Electronics")
	keyboard := seedProduct(t, r, "Keyboard", "25.00", 10, category.ID)
	mouse := seedProduct(t, r, "Mouse", "15.00", 10, category.ID)

	other := seedCategory(t, r, "Books")
	novel := seedProduct(t, r, "Novel", "9.99", 5, other.ID)

	customer := seedCustomer(t, r, "Jane", "Doe", "jane@example.com")
	order := seedOrder(t, r, customer.ID)
	seedOrderItem(t, r, order.ID, keyboard.ID, 2, "25.00")
	seedOrderItem(t, r, order.ID, novel.ID, 1, "9.99")

	require.NoError(t, NewCategoryService(r).Delete(ctx, category.ID))

	productSvc := NewProductService(r)
	_, err := productSvc.FindByID(ctx, keyboard.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = productSvc.FindByID(ctx, mouse.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// the other category's product survives
	_, err = productSvc.FindByID(ctx, novel.ID)
	require.NoError(t, err)

	// order items referencing removed products are gone, the rest stay
	items, err := NewOrderItemService(r).FindByOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, novel.ID, items[0].ProductID)

	// the surviving order's total reflects the remaining items
	got, err := NewOrderService(r).FindByID(ctx, order.ID)
	require.NoError(t, err)
	requireDecimalEqual(t, "9.99", got.TotalAmount)
}
