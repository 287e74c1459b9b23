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

type CustomerHandler struct {
	Svc      *service.CustomerService
	Producer *mykafka.Producer
}

func (h *CustomerHandler) GetCustomers(c echo.Context) error {
	customers, err := h.Svc.FindAll(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.Svc.FindByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) GetCustomerByEmail(c echo.Context) error {
	customer, err := h.Svc.FindByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) GetCustomersByStatus(c echo.Context) error {
	status := models.CustomerStatus(c.Param("status"))
	customers, err := h.Svc.FindByStatus(c.Request().Context(), status)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetActiveCustomers(c echo.Context) error {
	customers, err := h.Svc.FindActive(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) SearchCustomers(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	customers, err := h.Svc.SearchByName(c.Request().Context(), q)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.create")

	var req struct {
		FirstName string     `json:"first_name"`
		LastName  string     `json:"last_name"`
		Email     string     `json:"email"`
		Phone     string     `json:"phone"`
		Address   string     `json:"address"`
		BirthDate *time.Time `json:"birth_date"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_customer_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer := models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		BirthDate: req.BirthDate,
	}
	if err := h.Svc.Save(ctx, &customer); err != nil {
		l.Warn("create_customer_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "customer_events", fmt.Sprint(customer.ID), map[string]any{
		"type":       "customer_created",
		"customerID": customer.ID,
		"email":      customer.Email,
	})
	l.Info("create_customer_success", "customerID", customer.ID)
	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.update")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		FirstName *string    `json:"first_name"`
		LastName  *string    `json:"last_name"`
		Email     *string    `json:"email"`
		Phone     *string    `json:"phone"`
		Address   *string    `json:"address"`
		BirthDate *time.Time `json:"birth_date"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_customer_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return serviceError(err)
	}
	if req.FirstName != nil {
		customer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		customer.LastName = *req.LastName
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.BirthDate != nil {
		customer.BirthDate = req.BirthDate
	}
	if err := h.Svc.Save(ctx, customer); err != nil {
		l.Warn("update_customer_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "customer_events", fmt.Sprint(customer.ID), map[string]any{
		"type":       "customer_updated",
		"customerID": customer.ID,
	})
	l.Info("update_customer_success", "customerID", customer.ID)
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.update_status")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Status models.CustomerStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Svc.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		l.Warn("update_status_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "customer_events", fmt.Sprint(customer.ID), map[string]any{
		"type":       "customer_status_updated",
		"customerID": customer.ID,
		"status":     customer.Status,
	})
	l.Info("update_status_success", "customerID", customer.ID)
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) SuspendCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.suspend")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.Svc.Suspend(ctx, id)
	if err != nil {
		l.Warn("suspend_customer_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "customer_events", fmt.Sprint(customer.ID), map[string]any{
		"type":       "customer_suspended",
		"customerID": customer.ID,
	})
	l.Info("suspend_customer_success", "customerID", customer.ID)
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) ActivateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.activate")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.Svc.Activate(ctx, id)
	if err != nil {
		l.Warn("activate_customer_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "customer_events", fmt.Sprint(customer.ID), map[string]any{
		"type":       "customer_activated",
		"customerID": customer.ID,
	})
	l.Info("activate_customer_success", "customerID", customer.ID)
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Warn("delete_customer_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "customer_events", fmt.Sprint(id), map[string]any{
		"type":       "customer_deleted",
		"customerID": id,
	})
	l.Info("delete_customer_success", "customerID", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CustomerHandler) CountCustomers(c echo.Context) error {
	count, err := h.Svc.Count(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}
