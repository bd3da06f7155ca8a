package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/models"
)

type StatsHandler struct {
	DB *gorm.DB
}

type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

func (h *StatsHandler) AdminStats(c echo.Context) error {
	var users, menuItems, orders int64
	if err := h.DB.Model(&models.User{}).Count(&users).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	if err := h.DB.Model(&models.MenuItem{}).Count(&menuItems).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	if err := h.DB.Model(&models.Payment{}).Count(&orders).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	var revenue float64
	if err := h.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&revenue).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"users":     users,
		"menuItems": menuItems,
		"orders":    orders,
		"revenue":   revenue,
	})
}

// OrderStats joins every paid menu item against the menu and groups by
// category. Quantity counts join rows, revenue sums the menu price of each
// row, which matches what the storefront charts expect.
func (h *StatsHandler) OrderStats(c echo.Context) error {
	var stats []CategoryStat
	err := h.DB.Raw(`
		SELECT m.category AS category,
		       COUNT(*) AS quantity,
		       COALESCE(SUM(m.price), 0) AS revenue
		FROM payment_items pi
		JOIN menu_items m ON m.id = pi.menu_item_id
		GROUP BY m.category
		ORDER BY m.category`).Scan(&stats).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	if stats == nil {
		stats = []CategoryStat{}
	}
	return c.JSON(http.StatusOK, stats)
}
