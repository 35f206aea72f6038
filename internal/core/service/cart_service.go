package service

import (
	"github.com/rcastano/creator-store/internal/core/domain"
	"github.com/rcastano/creator-store/internal/port"
)

// CartView is the display-ready projection of one session's cart.
type CartView struct {
	Items []domain.LineItem
	Total domain.Money
}

// CartService binds session-scoped carts to the shared catalog. All
// mutators are total: quantity coercion happens inside the aggregate,
// and unknown ids are tolerated, so nothing here returns an error.
type CartService struct {
	catalog  port.CatalogRepository
	sessions port.SessionRepository
}

func NewCartService(catalog port.CatalogRepository, sessions port.SessionRepository) *CartService {
	return &CartService{catalog: catalog, sessions: sessions}
}

func (s *CartService) Add(sessionID, productID string, quantity int) {
	s.sessions.Cart(sessionID).Add(productID, quantity)
}

func (s *CartService) SetQuantity(sessionID, productID string, quantity int) {
	s.sessions.Cart(sessionID).SetQuantity(productID, quantity)
}

func (s *CartService) Remove(sessionID, productID string) {
	s.sessions.Cart(sessionID).Remove(productID)
}

func (s *CartService) Clear(sessionID string) {
	s.sessions.Cart(sessionID).Clear()
}

// View recomputes the derived line items and total from raw state plus
// catalog on every call.
func (s *CartService) View(sessionID string) CartView {
	cart := s.sessions.Cart(sessionID)
	return CartView{
		Items: cart.Lines(s.catalog),
		Total: domain.Money{
			Amount:   cart.Total(s.catalog),
			Currency: s.catalog.Currency(),
		},
	}
}
