package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/mykafka"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/repo"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/service"
)

func InitTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
		return nil
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Customer{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestDeps(t *testing.T) (*repo.GormRepo, Deps) {
	r := repo.New(InitTestDB(t))
	producer := &mykafka.Producer{}
	return r, Deps{
		CategoryHandler:  &CategoryHandler{Svc: service.NewCategoryService(r), Producer: producer},
		ProductHandler:   &ProductHandler{Svc: service.NewProductService(r), Producer: producer},
		CustomerHandler:  &CustomerHandler{Svc: service.NewCustomerService(r), Producer: producer},
		OrderHandler:     &OrderHandler{Svc: service.NewOrderService(r), Producer: producer},
		OrderItemHandler: &OrderItemHandler{Svc: service.NewOrderItemService(r), Producer: producer},
	}
}

func jsonRequest(method, target string, payload any) *http.Request {
	bodyBytes, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(bodyBytes))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestCreateCategory(t *testing.T) {
	_, d := newTestDeps(t)
	e := echo.New()

	payload := map[string]string{"name": "Electronics", "description": "Gadgets"}
	req := jsonRequest(http.MethodPost, "/api/v1/categories", payload)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, d.CategoryHandler.CreateCategory(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "Electronics", created.Name)
	require.NotEmpty(t, created.ID)

	// same name again is rejected
	req_dup := jsonRequest(http.MethodPost, "/api/v1/categories", payload)
	rec_dup := httptest.NewRecorder()
	c_dup := e.NewContext(req_dup, rec_dup)

	err := d.CategoryHandler.CreateCategory(c_dup)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetCategoryNotFound(t *testing.T) {
	_, d := newTestDeps(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := d.CategoryHandler.GetCategory(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetCategoryInvalidID(t *testing.T) {
	_, d := newTestDeps(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := d.CategoryHandler.GetCategory(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDeleteCategory(t *testing.T) {
	r, d := newTestDeps(t)
	e := echo.New()

	category := &models.Category{Name: "Books"}
	require.NoError(t, service.NewCategoryService(r).Save(context.Background(), category))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, d.CategoryHandler.DeleteCategory(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err := service.NewCategoryService(r).FindByID(context.Background(), category.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestCreateProduct(t *testing.T) {
	r, d := newTestDeps(t)
	e := echo.New()

	category := &models.Category{Name: "Electronics"}
	require.NoError(t, service.NewCategoryService(r).Save(context.Background(), category))

	payload := map[string]any{
		"name":        "Mouse",
		"price":       "79.99",
		"stock":       50,
		"category_id": category.ID,
	}
	req := jsonRequest(http.MethodPost, "/api/v1/products", payload)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, d.ProductHandler.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "Mouse", created.Name)
	require.True(t, decimal.RequireFromString("79.99").Equal(created.Price))

	// price must be positive
	bad := map[string]any{
		"name":        "Broken",
		"price":       "0",
		"stock":       1,
		"category_id": category.ID,
	}
	req_bad := jsonRequest(http.MethodPost, "/api/v1/products", bad)
	rec_bad := httptest.NewRecorder()
	c_bad := e.NewContext(req_bad, rec_bad)

	err := d.ProductHandler.CreateProduct(c_bad)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDeleteProductReferencedByOrder(t *testing.T) {
	r, d := newTestDeps(t)
	e := echo.New()
	ctx := context.Background()

	category := &models.Category{Name: "Electronics"}
	require.NoError(t, service.NewCategoryService(r).Save(ctx, category))
	product := &models.Product{Name: "Mouse", Price: decimal.RequireFromString("79.99"), Stock: 50, CategoryID: category.ID}
	require.NoError(t, service.NewProductService(r).Save(ctx, product))
	customer := &models.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	require.NoError(t, service.NewCustomerService(r).Save(ctx, customer))
	order := &models.Order{CustomerID: customer.ID}
	require.NoError(t, service.NewOrderService(r).Save(ctx, order))
	item := &models.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 1, UnitPrice: product.Price}
	require.NoError(t, service.NewOrderItemService(r).Save(ctx, item))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := d.ProductHandler.DeleteProduct(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusConflict, he.Code)
}

func TestCreateOrderItemComputesTotals(t *testing.T) {
	r, d := newTestDeps(t)
	e := echo.New()
	ctx := context.Background()

	category := &models.Category{Name: "Electronics"}
	require.NoError(t, service.NewCategoryService(r).Save(ctx, category))
	product := &models.Product{Name: "Mouse", Price: decimal.RequireFromString("79.99"), Stock: 50, CategoryID: category.ID}
	require.NoError(t, service.NewProductService(r).Save(ctx, product))
	customer := &models.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	require.NoError(t, service.NewCustomerService(r).Save(ctx, customer))
	order := &models.Order{CustomerID: customer.ID}
	require.NoError(t, service.NewOrderService(r).Save(ctx, order))

	payload := map[string]any{
		"order_id":   order.ID,
		"product_id": product.ID,
		"quantity":   2,
		"unit_price": "79.99",
	}
	req := jsonRequest(http.MethodPost, "/api/v1/order-items", payload)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, d.OrderItemHandler.CreateOrderItem(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.OrderItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.True(t, decimal.RequireFromString("159.98").Equal(created.Subtotal))

	got, err := service.NewOrderService(r).FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("159.98").Equal(got.TotalAmount))
}

func TestCancelDeliveredOrder(t *testing.T) {
	r, d := newTestDeps(t)
	e := echo.New()
	ctx := context.Background()

	customer := &models.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	require.NoError(t, service.NewCustomerService(r).Save(ctx, customer))
	order := &models.Order{CustomerID: customer.ID}
	orderSvc := service.NewOrderService(r)
	require.NoError(t, orderSvc.Save(ctx, order))
	_, err := orderSvc.UpdateStatus(ctx, order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/1/cancel", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err = d.OrderHandler.CancelOrder(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}
