package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/models"
)

type ReviewHandler struct {
	DB *gorm.DB
}

// Reviews are read-only through this API; they are written out of band.
func (h *ReviewHandler) GetReviews(c echo.Context) error {
	reviews := []models.Review{}
	if err := h.DB.Order("id ASC").Find(&reviews).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, reviews)
}
