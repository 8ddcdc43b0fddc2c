package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuItem(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	w := doRequest(t, r, http.MethodPost, "/menu", map[string]interface{}{
		"name":        "Margherita",
		"price":       12.50,
		"description": "Tomato, mozzarella, basil",
		"category":    "Pizza",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Menu item created successfully", resp["message"])
	assert.Equal(t, float64(1), resp["item_id"])

	w = doRequest(t, r, http.MethodGet, "/menu/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	menuItem := decodeBody(t, w)["menu_item"].(map[string]interface{})
	assert.Equal(t, "Margherita", menuItem["name"])
	assert.Equal(t, 12.50, menuItem["price"])
	assert.Equal(t, "Tomato, mozzarella, basil", menuItem["description"])
	assert.Equal(t, "Pizza", menuItem["category"])
}

func TestCreateMenuItemValidation(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	for _, payload := range []map[string]interface{}{
		{"name": "Soup"},
		{"price": 4.50},
		nil,
	} {
		w := doRequest(t, r, http.MethodPost, "/menu", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Name and price are required", decodeBody(t, w)["message"])
	}

	w := doRequest(t, r, http.MethodPost, "/menu", map[string]interface{}{
		"name":  "Soup",
		"price": -1.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMenuItems(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	w := doRequest(t, r, http.MethodGet, "/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["menu_items"], 0)

	seedMenuItem(t, db, "Soup", 4.50)
	seedMenuItem(t, db, "Salad", 6.00)

	w = doRequest(t, r, http.MethodGet, "/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["menu_items"], 2)
}

func TestUpdateMenuItem(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	seedMenuItem(t, db, "Soup", 4.50)

	w := doRequest(t, r, http.MethodPut, "/menu/1", map[string]interface{}{"price": 5.00})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Menu item updated successfully", decodeBody(t, w)["message"])

	w = doRequest(t, r, http.MethodGet, "/menu/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	menuItem := decodeBody(t, w)["menu_item"].(map[string]interface{})
	assert.Equal(t, 5.00, menuItem["price"])
	assert.Equal(t, "Soup", menuItem["name"])

	w = doRequest(t, r, http.MethodPut, "/menu/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No data provided to update", decodeBody(t, w)["message"])

	w = doRequest(t, r, http.MethodPut, "/menu/99", map[string]interface{}{"price": 5.00})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMenuItem(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	seedMenuItem(t, db, "Soup", 4.50)

	w := doRequest(t, r, http.MethodDelete, "/menu/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Menu item deleted successfully", decodeBody(t, w)["message"])

	w = doRequest(t, r, http.MethodGet, "/menu/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMenuItemReferencedByOrderRefused(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)
	seedTable(t, db, 1, 4)
	seedMenuItem(t, db, "Soup", 4.50)

	w := doRequest(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"table_id": 1, "menu_item_ids": []uint{1},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/menu/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Menu item is referenced by existing orders", decodeBody(t, w)["message"])

	// GetOrder still resolves the name.
	w = doRequest(t, r, http.MethodGet, "/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeBody(t, w)["order"].(map[string]interface{})["order_items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Soup", items[0].(map[string]interface{})["menu_item_name"])
}
