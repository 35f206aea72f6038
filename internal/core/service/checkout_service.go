package service

import (
	"errors"

	"github.com/rcastano/creator-store/internal/port"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService implements the terminal checkout: no payment, no
// rollback. A cart whose derived view is empty is rejected; anything
// else is cleared and reported as success.
type CheckoutService struct {
	catalog  port.CatalogRepository
	sessions port.SessionRepository
}

func NewCheckoutService(catalog port.CatalogRepository, sessions port.SessionRepository) *CheckoutService {
	return &CheckoutService{catalog: catalog, sessions: sessions}
}

func (s *CheckoutService) Checkout(sessionID string) error {
	cart := s.sessions.Cart(sessionID)
	if cart.Empty(s.catalog) {
		return ErrEmptyCart
	}
	cart.Clear()
	return nil
}
