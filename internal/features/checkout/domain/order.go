package domain

import (
	"errors"
	"time"
)

// ErrEmptyCart is returned when an order is placed with no cart lines.
var ErrEmptyCart = errors.New("cart is empty")

// ErrMissingEmail is returned when the customer has no contact email.
var ErrMissingEmail = errors.New("customer email is required")

// Customer identifies who the order is for.
type Customer struct {
	// Name is the customer's full name.
	Name string `json:"name"`
	// Email is the contact email for order confirmation.
	Email string `json:"email"`
	// Address is the shipping address.
	Address string `json:"address"`
}

// OrderLine is a purchased product within an order.
type OrderLine struct {
	// ProductID identifies the purchased product.
	ProductID int `json:"product_id"`
	// Title is the product title at purchase time.
	Title string `json:"title"`
	// UnitPrice is the price per unit at purchase time.
	UnitPrice float64 `json:"unit_price"`
	// Quantity is the number of units purchased.
	Quantity int `json:"quantity"`
}

// Order is a confirmed purchase, frozen from a cart snapshot.
type Order struct {
	// ID is the unique order identifier.
	ID string `json:"order_id"`
	// Customer is the purchaser.
	Customer Customer `json:"customer"`
	// Lines are the purchased products, in cart order.
	Lines []OrderLine `json:"lines"`
	// Total is the order total at purchase time.
	Total float64 `json:"total"`
	// PlacedAt is when the order was placed.
	PlacedAt time.Time `json:"placed_at"`
}
