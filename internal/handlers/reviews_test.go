package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/models"
)

func TestGetReviews(t *testing.T) {
	db := initTestDB(t)
	e := echo.New()
	h := &ReviewHandler{DB: db}

	c, rec := doJSONRequest(t, e, http.MethodGet, "/reviews", nil)
	require.NoError(t, h.GetReviews(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())

	require.NoError(t, db.Create(&models.Review{Name: "Munna", Details: "Great biryani", Rating: 5}).Error)

	c, rec = doJSONRequest(t, e, http.MethodGet, "/reviews", nil)
	require.NoError(t, h.GetReviews(c))

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	require.Equal(t, "Great biryani", reviews[0].Details)
}
