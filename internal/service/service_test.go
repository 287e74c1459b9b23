package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err)

	return repo.New(db)
}

func seedCategory(t *testing.T, r *repo.GormRepo, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, NewCategoryService(r).Save(context.Background(), category))
	return category
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string, price string, stock int, categoryID uint) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
		CategoryID: categoryID,
	}
	require.NoError(t, NewProductService(r).Save(context.Background(), product))
	return product
}

func seedCustomer(t *testing.T, r *repo.GormRepo, first, last, email string) *models.Customer {
	t.Helper()
	customer := &models.Customer{FirstName: first, LastName: last, Email: email}
	require.NoError(t, NewCustomerService(r).Save(context.Background(), customer))
	return customer
}

func seedOrder(t *testing.T, r *repo.GormRepo, customerID uint) *models.Order {
	t.Helper()
	order := &models.Order{CustomerID: customerID}
	require.NoError(t, NewOrderService(r).Save(context.Background(), order))
	return order
}

func seedOrderItem(t *testing.T, r *repo.GormRepo, orderID, productID uint, quantity int, unitPrice string) *models.OrderItem {
	t.Helper()
	item := &models.OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString(unitPrice),
	}
	require.NoError(t, NewOrderItemService(r).Save(context.Background(), item))
	return item
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got),
		"expected %s, got %s", want, got.String())
}

func birthDate(year int) *time.Time {
	d := time.Date(year, time.March, 14, 0, 0, 0, 0, time.UTC)
	return &d
}
