package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const tokenTTL = time.Hour

type TokenHandler struct {
	JWTSecret []byte
}

// IssueToken signs whatever claim payload the caller submits (the client
// sends {email}) with a one hour expiry. Expiry is the only invalidation
// path; there is no refresh and no revocation list.
func (h *TokenHandler) IssueToken(c echo.Context) error {
	var req map[string]interface{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	claims := jwt.MapClaims{}
	for k, v := range req {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(tokenTTL).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString(h.JWTSecret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not sign token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
