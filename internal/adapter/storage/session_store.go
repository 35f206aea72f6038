package storage

import (
	"sync"

	"github.com/rcastano/creator-store/internal/core/domain"
)

// SessionStore holds one cart per live session, entirely in memory.
// Nothing survives a restart. The mutex guards only the session map;
// each cart keeps its single-writer, synchronous semantics because a
// session issues its mutations serially.
type SessionStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewSessionStore() *SessionStore {
	return &SessionStore{carts: make(map[string]*domain.Cart)}
}

func (s *SessionStore) Cart(sessionID string) *domain.Cart {
	s.mu.RLock()
	cart, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return cart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}
	cart = domain.NewCart()
	s.carts[sessionID] = cart
	return cart
}

func (s *SessionStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
