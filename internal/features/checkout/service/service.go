package service

import (
	"time"

	"shopfront/internal/core/logger"
	"shopfront/internal/core/metrics"
	cartstore "shopfront/internal/features/cart/store"
	"shopfront/internal/features/checkout/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutService turns the current cart into an order. The cart is cleared
// only after the order is built, so a rejected checkout leaves it intact.
type CheckoutService struct {
	cart *cartstore.CartStore
	log  *zap.Logger
	now  func() time.Time
}

// NewCheckoutService creates a checkout service over the cart store.
func NewCheckoutService(cart *cartstore.CartStore) *CheckoutService {
	return &CheckoutService{
		cart: cart,
		log:  logger.Named("checkout"),
		now:  time.Now,
	}
}

// PlaceOrder freezes the cart snapshot into an order and clears the cart.
func (s *CheckoutService) PlaceOrder(customer domain.Customer) (*domain.Order, error) {
	if customer.Email == "" {
		return nil, domain.ErrMissingEmail
	}

	snap := s.cart.Snapshot()
	if len(snap.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	lines := make([]domain.OrderLine, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		lines = append(lines, domain.OrderLine{
			ProductID: l.ProductID,
			Title:     l.Title,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	order := &domain.Order{
		ID:       uuid.NewString(),
		Customer: customer,
		Lines:    lines,
		Total:    snap.Total,
		PlacedAt: s.now(),
	}

	s.cart.Clear()
	metrics.OrdersPlacedTotal.Inc()
	s.log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("lines", len(order.Lines)),
		zap.Float64("total", order.Total),
	)

	return order, nil
}
