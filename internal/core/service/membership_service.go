package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/rcastano/creator-store/internal/core/domain"
	"github.com/rcastano/creator-store/internal/port"
)

var ErrInvalidEmail = errors.New("invalid email address")

// MembershipService handles membership joins and the newsletter list.
// A join is recorded as a synthetic cart line ("membership-<plan>")
// rather than a distinct subscription entity; the catalog registers
// plan entries under those ids so the line prices like a product.
type MembershipService struct {
	sessions port.SessionRepository

	mu          sync.Mutex
	subscribers map[string]struct{}
}

func NewMembershipService(sessions port.SessionRepository) *MembershipService {
	return &MembershipService{
		sessions:    sessions,
		subscribers: make(map[string]struct{}),
	}
}

// Join validates the email and puts the plan's membership line in the
// session's cart. The plan id itself is not validated: an unknown plan
// produces a dangling line, consistent with add-time tolerance for ids
// the catalog does not carry yet.
func (s *MembershipService) Join(sessionID, email, planID string) error {
	if !validEmail(email) {
		return ErrInvalidEmail
	}
	s.sessions.Cart(sessionID).Add(domain.MembershipLinePrefix+planID, 1)
	return nil
}

// Subscribe adds the email to the newsletter list, de-duplicated
// case-insensitively.
func (s *MembershipService) Subscribe(email string) error {
	if !validEmail(email) {
		return ErrInvalidEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[strings.ToLower(email)] = struct{}{}
	return nil
}

// Subscribers reports the newsletter list size.
func (s *MembershipService) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

// The only email check the storefront performs: presence of an "@".
func validEmail(email string) bool {
	return strings.Contains(email, "@")
}
