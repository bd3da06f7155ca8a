package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const CtxEmail = "email"

// RequireLogin checks the Authorization header for a bearer token signed
// with the shared secret and puts the email claim into the echo context.
// A missing header is unauthenticated; a bad or expired token is forbidden.
func RequireLogin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			email, _ := claims[CtxEmail].(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusForbidden, "token has no email claim")
			}
			c.Set(CtxEmail, email)

			return next(c)
		}
	}
}

// EmailFromContext returns the authenticated email set by RequireLogin.
func EmailFromContext(c echo.Context) string {
	email, _ := c.Get(CtxEmail).(string)
	return email
}
