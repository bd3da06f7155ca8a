package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/models"
)

// AdminOnly resolves the authenticated email against the users table and
// rejects anyone whose stored role is not admin. It must run after
// RequireLogin. The role is read per request, so a demotion takes effect
// on the next call even though the token itself stays valid until expiry.
func AdminOnly(db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := EmailFromContext(c)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated identity")
			}

			var user models.User
			if err := db.Where("email = ?", email).First(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "you don't have enough rights")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, err)
			}

			if !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "you don't have enough rights")
			}

			return next(c)
		}
	}
}
