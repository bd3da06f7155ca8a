package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/models"
)

var testSecret = []byte("test-secret")

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func signToken(t *testing.T, email string, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func newContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	return he.Code
}

func TestRequireLoginMissingHeader(t *testing.T) {
	c, _ := newContext("")
	err := RequireLogin(testSecret)(okHandler)(c)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, httpCode(t, err))
}

func TestRequireLoginBadSignature(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "munna@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	c, _ := newContext("Bearer " + token)
	err = RequireLogin(testSecret)(okHandler)(c)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, httpCode(t, err))
}

func TestRequireLoginExpiredToken(t *testing.T) {
	token := signToken(t, "munna@example.com", -2*time.Hour)

	c, _ := newContext("Bearer " + token)
	err := RequireLogin(testSecret)(okHandler)(c)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, httpCode(t, err))
}

func TestRequireLoginSetsEmail(t *testing.T) {
	token := signToken(t, "munna@example.com", time.Hour)

	c, rec := newContext("Bearer " + token)
	var seen string
	err := RequireLogin(testSecret)(func(c echo.Context) error {
		seen = EmailFromContext(c)
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "munna@example.com", seen)
}

func TestRequireLoginTokenWithoutEmail(t *testing.T) {
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	c, _ := newContext("Bearer " + token)
	err = RequireLogin(testSecret)(okHandler)(c)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, httpCode(t, err))
}

func TestAdminOnly(t *testing.T) {
	db := initTestDB(t)
	require.NoError(t, db.Create(&models.User{Email: "admin@example.com", Role: "admin"}).Error)
	require.NoError(t, db.Create(&models.User{Email: "plain@example.com"}).Error)

	mw := AdminOnly(db)

	c, rec := newContext("")
	c.Set(CtxEmail, "admin@example.com")
	require.NoError(t, mw(okHandler)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, _ = newContext("")
	c.Set(CtxEmail, "plain@example.com")
	err := mw(okHandler)(c)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, httpCode(t, err))

	c, _ = newContext("")
	c.Set(CtxEmail, "ghost@example.com")
	err = mw(okHandler)(c)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, httpCode(t, err))
}

// A demoted admin is locked out on the next request even though the token
// is still valid, because the role is re-read from the store per request.
func TestAdminOnlyDemotionTakesEffectImmediately(t *testing.T) {
	db := initTestDB(t)
	user := models.User{Email: "admin@example.com", Role: "admin"}
	require.NoError(t, db.Create(&user).Error)

	mw := AdminOnly(db)

	c, _ := newContext("")
	c.Set(CtxEmail, "admin@example.com")
	require.NoError(t, mw(okHandler)(c))

	user.Role = ""
	require.NoError(t, db.Save(&user).Error)

	c, _ = newContext("")
	c.Set(CtxEmail, "admin@example.com")
	err := mw(okHandler)(c)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, httpCode(t, err))
}
