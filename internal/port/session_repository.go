package port

import (
	"github.com/rcastano/creator-store/internal/core/domain"
)

type SessionRepository interface {
	// Cart returns the cart owned by the session, creating an empty one
	// on first use. The session remains the cart's only writer.
	Cart(sessionID string) *domain.Cart

	// Drop discards a session's cart; no-op for unknown sessions
	Drop(sessionID string)

	// Len reports the number of live sessions
	Len() int
}
