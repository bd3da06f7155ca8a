package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/middleware/auth"
	"github.com/MhMunna12/kutumbari-restaurant-server/internal/models"
)

type CartHandler struct {
	DB *gorm.DB
}

func (h *CartHandler) GetCart(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusOK, []models.CartEntry{})
	}

	if email != auth.EmailFromContext(c) {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}

	entries := []models.CartEntry{}
	if err := h.DB.Where("email = ?", email).Find(&entries).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// AddToCart trusts the owner email from the request body; the client adds
// items before the user ever authenticates.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var entry models.CartEntry
	if err := c.Bind(&entry); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}
	entry.ID = 0

	if err := h.DB.Create(&entry).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *CartHandler) DeleteFromCart(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	var entry models.CartEntry
	if err := h.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	if entry.Email != auth.EmailFromContext(c) {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}

	if err := h.DB.Delete(&models.CartEntry{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.NoContent(http.StatusNoContent)
}
