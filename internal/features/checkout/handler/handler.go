package handler

import (
	"errors"

	"shopfront/internal/features/checkout/domain"
	"shopfront/internal/features/checkout/service"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler exposes order placement.
type CheckoutHandler struct {
	checkout *service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// PlaceOrder places an order from the current cart.
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	var customer domain.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID,
		})
	}

	order, err := h.checkout.PlaceOrder(customer)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
				Message: "cart is empty",
				RayID:   rayID,
			})
		case errors.Is(err, domain.ErrMissingEmail):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "customer email is required",
				RayID:   rayID,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}
