package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/logging"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/models"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/mykafka"
	"github.com/yanelyapura/FacturacionPrimeraEntrega-Yapura/internal/service"
)

type CategoryHandler struct {
	Svc      *service.CategoryService
	Producer *mykafka.Producer
}

func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.Svc.FindAll(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.Svc.FindByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) GetCategoryByName(c echo.Context) error {
	category, err := h.Svc.FindByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_category_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	category := models.Category{Name: req.Name, Description: req.Description}
	if err := h.Svc.Save(ctx, &category); err != nil {
		l.Warn("create_category_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "category_events", fmt.Sprint(category.ID), map[string]any{
		"type":       "category_created",
		"categoryID": category.ID,
		"name":       category.Name,
	})
	l.Info("create_category_success", "categoryID", category.ID)
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_category_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	category, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return serviceError(err)
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if err := h.Svc.Save(ctx, category); err != nil {
		l.Warn("update_category_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "category_events", fmt.Sprint(category.ID), map[string]any{
		"type":       "category_updated",
		"categoryID": category.ID,
		"name":       category.Name,
	})
	l.Info("update_category_success", "categoryID", category.ID)
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Warn("delete_category_error", "error", err)
		return serviceError(err)
	}

	publish(c, h.Producer, "category_events", fmt.Sprint(id), map[string]any{
		"type":       "category_deleted",
		"categoryID": id,
	})
	l.Info("delete_category_success", "categoryID", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CategoryHandler) CountCategories(c echo.Context) error {
	count, err := h.Svc.Count(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}
