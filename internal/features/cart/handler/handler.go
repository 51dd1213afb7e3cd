package handler

import (
	"strconv"

	"shopfront/internal/features/cart/domain"
	cartstore "shopfront/internal/features/cart/store"

	"github.com/gofiber/fiber/v2"
)

// CartHandler is the thin consumer over the cart store: it reads snapshots
// and dispatches intents, nothing more.
type CartHandler struct {
	cart *cartstore.CartStore
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart *cartstore.CartStore) *CartHandler {
	return &CartHandler{cart: cart}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

type addItemRequest struct {
	ProductID int     `json:"product_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	ImageRef  string  `json:"image_ref"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the current cart snapshot.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(h.cart.Snapshot())
}

// AddItem adds one unit of a product to the cart.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	snap := h.cart.AddItem(domain.LineInput{
		ProductID: req.ProductID,
		Title:     req.Title,
		UnitPrice: req.UnitPrice,
		ImageRef:  req.ImageRef,
	})

	return c.JSON(snap)
}

// SetQuantity overwrites a line's quantity. Quantities below 1 are ignored
// by the store, so the response simply reflects the unchanged snapshot.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "product id must be an integer",
			RayID:   rayID(c),
		})
	}

	var req setQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	return c.JSON(h.cart.SetQuantity(productID, req.Quantity))
}

// RemoveItem deletes a line; removing an absent product is a no-op.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "product id must be an integer",
			RayID:   rayID(c),
		})
	}

	return c.JSON(h.cart.RemoveItem(productID))
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	return c.JSON(h.cart.Clear())
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
