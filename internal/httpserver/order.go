package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/logging"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/mykafka"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/service"
)

type OrderHandler struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	orders, err := h.Svc.FindAll(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.Svc.FindByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetOrdersByCustomer(c echo.Context) error {
	customerID, err := parseID(c, "customerId")
	if err != nil {
		return err
	}
	orders, err := h.Svc.FindByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrdersWithItemsByCustomer(c echo.Context) error {
	customerID, err := parseID(c, "customerId")
	if err != nil {
		return err
	}
	orders, err := h.Svc.FindWithItemsByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrdersByStatus(c echo.Context) error {
	status := models.OrderStatus(c.Param("status"))
	orders, err := h.Svc.FindByStatus(c.Request().Context(), status)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrdersByDateRange(c echo.Context) error {
	start, err := time.Parse(time.RFC3339, c.QueryParam("start"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start is not a valid RFC3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("end"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "end is not a valid RFC3339 timestamp")
	}
	orders, err := h.Svc.FindByDateRange(c.Request().Context(), start, end)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrderByNumber(c echo.Context) error {
	order, err := h.Svc.FindByOrderNumber(c.Request().Context(), c.Param("orderNumber"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req struct {
		OrderNumber     string `json:"order_number"`
		CustomerID      uint   `json:"customer_id"`
		ShippingAddress string `json:"shipping_address"`
		Notes           string `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order := models.Order{
		OrderNumber:     req.OrderNumber,
		CustomerID:      req.CustomerID,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	}
	if err := h.Svc.Save(ctx, &order); err != nil {
		l.Warn("create_order_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":        "order_created",
		"orderID":     order.ID,
		"orderNumber": order.OrderNumber,
		"customerID":  order.CustomerID,
	})
	l.Info("create_order_success", "orderID", order.ID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		ShippingAddress *string `json:"shipping_address"`
		Notes           *string `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return serviceError(err)
	}
	if req.ShippingAddress != nil {
		order.ShippingAddress = *req.ShippingAddress
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	if err := h.Svc.Save(ctx, order); err != nil {
		l.Warn("update_order_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":    "order_updated",
		"orderID": order.ID,
	})
	l.Info("update_order_success", "orderID", order.ID)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		l.Warn("update_status_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":    "order_status_updated",
		"orderID": order.ID,
		"status":  order.Status,
	})
	l.Info("update_status_success", "orderID", order.ID)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.cancel")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.Svc.Cancel(ctx, id)
	if err != nil {
		l.Warn("cancel_order_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":    "order_cancelled",
		"orderID": order.ID,
	})
	l.Info("cancel_order_success", "orderID", order.ID)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Warn("delete_order_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(id), map[string]any{
		"type":    "order_deleted",
		"orderID": id,
	})
	l.Info("delete_order_success", "orderID", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) CountOrders(c echo.Context) error {
	count, err := h.Svc.Count(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}
