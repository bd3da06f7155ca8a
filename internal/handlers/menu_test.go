package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/models"
)

func TestCreateMenuItemAndList(t *testing.T) {
	db := initTestDB(t)
	e := echo.New()
	h := &MenuHandler{DB: db}

	payload := map[string]interface{}{
		"name":     "Pizza",
		"category": "main",
		"recipe":   "dough, tomato, cheese",
		"price":    12.5,
		"image":    "pizza.jpg",
	}
	c, rec := doJSONRequest(t, e, http.MethodPost, "/menu", payload)
	require.NoError(t, h.CreateMenuItem(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	require.Equal(t, "Pizza", created.Name)
	require.Equal(t, 12.5, created.Price)

	c, rec = doJSONRequest(t, e, http.MethodGet, "/menu", nil)
	require.NoError(t, h.GetMenu(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, created.ID, items[0].ID)
}

func TestGetMenuItemUnknownIDIsEmpty(t *testing.T) {
	db := initTestDB(t)
	e := echo.New()
	h := &MenuHandler{DB: db}

	c, rec := doJSONRequest(t, e, http.MethodGet, "/menu/42", nil)
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, h.GetMenuItem(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "null", rec.Body.String())
}

func TestPatchMenuItemKeepsUnspecifiedFields(t *testing.T) {
	db := initTestDB(t)
	e := echo.New()
	h := &MenuHandler{DB: db}

	item := models.MenuItem{Name: "Dal", Category: "soup", Recipe: "lentils", Price: 4, Image: "dal.jpg"}
	require.NoError(t, db.Create(&item).Error)

	c, rec := doJSONRequest(t, e, http.MethodPatch, "/menu/1", map[string]interface{}{
		"price": 5.5,
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.PatchMenuItem(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.MenuItem
	require.NoError(t, db.First(&updated, item.ID).Error)
	require.Equal(t, 5.5, updated.Price)
	require.Equal(t, "Dal", updated.Name)
	require.Equal(t, "soup", updated.Category)
	require.Equal(t, "lentils", updated.Recipe)
	require.Equal(t, "dal.jpg", updated.Image)
}

func TestPatchMenuItemNotFound(t *testing.T) {
	db := initTestDB(t)
	e := echo.New()
	h := &MenuHandler{DB: db}

	c, _ := doJSONRequest(t, e, http.MethodPatch, "/menu/9", map[string]interface{}{"price": 1.0})
	c.SetParamNames("id")
	c.SetParamValues("9")
	err := h.PatchMenuItem(c)
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestDeleteMenuItem(t *testing.T) {
	db := initTestDB(t)
	e := echo.New()
	h := &MenuHandler{DB: db}

	item := models.MenuItem{Name: "Kebab", Category: "main", Price: 9}
	require.NoError(t, db.Create(&item).Error)

	c, rec := doJSONRequest(t, e, http.MethodDelete, "/menu/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.DeleteMenuItem(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&count).Error)
	require.Zero(t, count)
}
