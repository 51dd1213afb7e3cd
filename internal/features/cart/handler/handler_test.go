package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"shopfront/internal/features/cart/domain"
	cartstore "shopfront/internal/features/cart/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(cart *cartstore.CartStore) *fiber.App {
	handler := NewCartHandler(cart)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/cart", handler.GetCart)
	app.Post("/cart/items", handler.AddItem)
	app.Put("/cart/items/:id", handler.SetQuantity)
	app.Delete("/cart/items/:id", handler.RemoveItem)
	app.Delete("/cart", handler.ClearCart)

	return app
}

func TestCartHandler_AddAndGet(t *testing.T) {
	cart := cartstore.New()
	app := newTestApp(cart)

	req := httptest.NewRequest("POST", "/cart/items",
		strings.NewReader(`{"product_id": 1, "title": "Red Shoe", "unit_price": 50, "image_ref": "shoe.jpg"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	getResp, err := app.Test(httptest.NewRequest("GET", "/cart", nil))
	require.NoError(t, err)

	var snap domain.CartState
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&snap))
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 50.0, snap.Total)
}

func TestCartHandler_AddSameProductTwice(t *testing.T) {
	cart := cartstore.New()
	app := newTestApp(cart)

	body := `{"product_id": 1, "title": "Widget", "unit_price": 20}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/cart/items", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		_, err := app.Test(req)
		require.NoError(t, err)
	}

	snap := cart.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, 40.0, snap.Total)
}

func TestCartHandler_SetQuantity(t *testing.T) {
	cart := cartstore.New()
	cart.AddItem(domain.LineInput{ProductID: 1, Title: "Widget", UnitPrice: 20})
	app := newTestApp(cart)

	req := httptest.NewRequest("PUT", "/cart/items/1", strings.NewReader(`{"quantity": 4}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 4, cart.Snapshot().Lines[0].Quantity)
}

func TestCartHandler_SetQuantityBelowOneIgnored(t *testing.T) {
	cart := cartstore.New()
	cart.AddItem(domain.LineInput{ProductID: 1, Title: "Widget", UnitPrice: 20})
	cart.AddItem(domain.LineInput{ProductID: 1, Title: "Widget", UnitPrice: 20})
	app := newTestApp(cart)

	req := httptest.NewRequest("PUT", "/cart/items/1", strings.NewReader(`{"quantity": 0}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "an ignored intent is not an HTTP error")

	snap := cart.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
}

func TestCartHandler_SetQuantityBadID(t *testing.T) {
	app := newTestApp(cartstore.New())

	req := httptest.NewRequest("PUT", "/cart/items/abc", strings.NewReader(`{"quantity": 2}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	cart := cartstore.New()
	cart.AddItem(domain.LineInput{ProductID: 1, Title: "Widget", UnitPrice: 20})
	app := newTestApp(cart)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/cart/items/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, cart.Snapshot().Lines)

	// Removing an absent product stays a quiet no-op.
	resp, err = app.Test(httptest.NewRequest("DELETE", "/cart/items/99", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCartHandler_Clear(t *testing.T) {
	cart := cartstore.New()
	cart.AddItem(domain.LineInput{ProductID: 1, Title: "Widget", UnitPrice: 20})
	app := newTestApp(cart)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/cart", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, cart.Snapshot().Lines)
}
