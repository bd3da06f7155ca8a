package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/models"
	"github.com/MhMunna12/kutumbari-restaurant-server/internal/mykafka"
	"github.com/MhMunna12/kutumbari-restaurant-server/internal/search"
)

type MenuHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

func (h *MenuHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "menu_events", fmt.Sprint(event["menuItemID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *MenuHandler) indexItem(c echo.Context, item models.MenuItem) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.IndexItem(ctx, h.ES, h.Index, item); err != nil {
		c.Logger().Errorf("ES index error: %v", err)
	}
}

func (h *MenuHandler) GetMenu(c echo.Context) error {
	items := []models.MenuItem{}
	if err := h.DB.Order("id ASC").Find(&items).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	var item models.MenuItem
	if err := h.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// an unknown id is an empty result, not an error
			return c.JSON(http.StatusOK, nil)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	var req struct {
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Recipe   string  `json:"recipe"`
		Price    float64 `json:"price"`
		Image    string  `json:"image"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	item := models.MenuItem{
		Name:     req.Name,
		Category: req.Category,
		Recipe:   req.Recipe,
		Price:    req.Price,
		Image:    req.Image,
	}

	if err := h.DB.Create(&item).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	h.indexItem(c, item)
	h.publish(c, map[string]interface{}{
		"type":       "menu_item_created",
		"menuItemID": item.ID,
		"name":       item.Name,
	})

	return c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) PatchMenuItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	var req struct {
		Name     *string  `json:"name"`
		Category *string  `json:"category"`
		Recipe   *string  `json:"recipe"`
		Price    *float64 `json:"price"`
		Image    *string  `json:"image"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	var item models.MenuItem
	if err := h.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("menu item %d not found", id))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	// only the submitted fields are replaced
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Recipe != nil {
		item.Recipe = *req.Recipe
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Image != nil {
		item.Image = *req.Image
	}

	if err := h.DB.Save(&item).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	h.indexItem(c, item)
	h.publish(c, map[string]interface{}{
		"type":       "menu_item_updated",
		"menuItemID": item.ID,
		"name":       item.Name,
	})

	return c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	if err := h.DB.Delete(&models.MenuItem{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	if h.ES != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		if err := search.DeleteItem(ctx, h.ES, h.Index, uint(id)); err != nil {
			c.Logger().Errorf("ES delete error: %v", err)
		}
	}
	h.publish(c, map[string]interface{}{
		"type":       "menu_item_deleted",
		"menuItemID": id,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *MenuHandler) SearchMenu(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query error")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := search.Calculate(page, size)

	if h.ES == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search is not configured")
	}

	total, items, err := search.Search(c.Request().Context(), h.ES, h.Index, q, from, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "items": items})
}
