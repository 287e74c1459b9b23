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

type OrderItemHandler struct {
	Svc      *service.OrderItemService
	Producer *mykafka.Producer
}

func (h *OrderItemHandler) GetOrderItems(c echo.Context) error {
	items, err := h.Svc.FindAll(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OrderItemHandler) GetOrderItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.Svc.FindByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *OrderItemHandler) GetOrderItemsByOrder(c echo.Context) error {
	orderID, err := parseID(c, "orderId")
	if err != nil {
		return err
	}
	items, err := h.Svc.FindByOrder(c.Request().Context(), orderID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OrderItemHandler) GetOrderItemsByProduct(c echo.Context) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}
	items, err := h.Svc.FindByProduct(c.Request().Context(), productID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OrderItemHandler) CreateOrderItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_item.create")

	var req struct {
		OrderID   uint            `json:"order_id"`
		ProductID uint            `json:"product_id"`
		Quantity  int             `json:"quantity"`
		UnitPrice decimal.Decimal `json:"unit_price"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item := models.OrderItem{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	}
	if err := h.Svc.Save(ctx, &item); err != nil {
		l.Warn("create_order_item_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "order_item_events", fmt.Sprint(item.ID), map[string]any{
		"type":      "order_item_created",
		"itemID":    item.ID,
		"orderID":   item.OrderID,
		"productID": item.ProductID,
	})
	l.Info("create_order_item_success", "itemID", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *OrderItemHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_item.update_quantity")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.UpdateQuantity(ctx, id, req.Quantity)
	if err != nil {
		l.Warn("update_quantity_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "order_item_events", fmt.Sprint(item.ID), map[string]any{
		"type":     "order_item_quantity_updated",
		"itemID":   item.ID,
		"orderID":  item.OrderID,
		"quantity": item.Quantity,
	})
	l.Info("update_quantity_success", "itemID", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *OrderItemHandler) DeleteOrderItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_item.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Warn("delete_order_item_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "order_item_events", fmt.Sprint(id), map[string]any{
		"type":   "order_item_deleted",
		"itemID": id,
	})
	l.Info("delete_order_item_success", "itemID", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderItemHandler) CountOrderItems(c echo.Context) error {
	count, err := h.Svc.Count(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

func (h *OrderItemHandler) CountOrderItemsByOrder(c echo.Context) error {
	orderID, err := parseID(c, "orderId")
	if err != nil {
		return err
	}
	count, err := h.Svc.CountByOrder(c.Request().Context(), orderID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}
