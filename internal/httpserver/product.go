package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/logging"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/mykafka"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/service"
)

type ProductHandler struct {
	Svc      *service.ProductService
	Producer *mykafka.Producer
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	products, err := h.Svc.FindAll(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.Svc.FindByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetProductsByCategory(c echo.Context) error {
	categoryID, err := parseID(c, "categoryId")
	if err != nil {
		return err
	}
	products, err := h.Svc.FindByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductsByCategoryByPrice(c echo.Context) error {
	categoryID, err := parseID(c, "categoryId")
	if err != nil {
		return err
	}
	products, err := h.Svc.FindByCategoryOrderByPrice(c.Request().Context(), categoryID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	products, err := h.Svc.SearchByName(c.Request().Context(), q)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductsByPriceRange(c echo.Context) error {
	min, err := decimal.NewFromString(c.QueryParam("min"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "min is not a valid price")
	}
	max, err := decimal.NewFromString(c.QueryParam("max"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "max is not a valid price")
	}
	products, err := h.Svc.FindByPriceRange(c.Request().Context(), min, max)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductsInStock(c echo.Context) error {
	products, err := h.Svc.FindInStock(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetTopSellingProducts(c echo.Context) error {
	limit := parseIntDefault(c.QueryParam("limit"), 10)
	products, err := h.Svc.FindTopSelling(c.Request().Context(), limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Price       decimal.Decimal `json:"price"`
		Stock       int             `json:"stock"`
		CategoryID  uint            `json:"category_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}
	if err := h.Svc.Save(ctx, &product); err != nil {
		l.Warn("create_product_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})
	l.Info("create_product_success", "productID", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Price       *decimal.Decimal `json:"price"`
		Stock       *int             `json:"stock"`
		CategoryID  *uint            `json:"category_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return serviceError(err)
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if err := h.Svc.Save(ctx, product); err != nil {
		l.Warn("update_product_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})
	l.Info("update_product_success", "productID", product.ID)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateStock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_stock")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Stock int `json:"stock"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_stock_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.UpdateStock(ctx, id, req.Stock)
	if err != nil {
		l.Warn("update_stock_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]any{
		"type":      "product_stock_updated",
		"productID": product.ID,
		"stock":     product.Stock,
	})
	l.Info("update_stock_success", "productID", product.ID)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdatePrice(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_price")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Price decimal.Decimal `json:"price"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_price_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.UpdatePrice(ctx, id, req.Price)
	if err != nil {
		l.Warn("update_price_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(product.ID), map[string]any{
		"type":      "product_price_updated",
		"productID": product.ID,
		"price":     product.Price,
	})
	l.Info("update_price_success", "productID", product.ID)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Warn("delete_product_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "product_events", fmt.Sprint(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	l.Info("delete_product_success", "productID", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) CountProducts(c echo.Context) error {
	count, err := h.Svc.Count(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}
