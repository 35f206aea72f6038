package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckout_EmptyCartRejected(t *testing.T) {
	sessions := newStubSessions()
	svc := NewCheckoutService(newStubCatalog(), sessions)

	err := svc.Checkout("s")
	require.True(t, errors.Is(err, ErrEmptyCart))
	require.Empty(t, sessions.Cart("s").Items(), "rejection must not change state")
}

func TestCheckout_DanglingOnlyCartCountsAsEmpty(t *testing.T) {
	catalog := newStubCatalog()
	sessions := newStubSessions()
	sessions.Cart("s").Add("unknown-id", 1)

	err := NewCheckoutService(catalog, sessions).Checkout("s")
	require.True(t, errors.Is(err, ErrEmptyCart))

	// the raw dangling line survives the rejected attempt
	require.Len(t, sessions.Cart("s").Items(), 1)
}

func TestCheckout_ClearsNonEmptyCart(t *testing.T) {
	catalog := newStubCatalog(priced("ebook-versioning", "Versioning in Practice", "19.00"))
	sessions := newStubSessions()
	sessions.Cart("s").Add("ebook-versioning", 3)
	sessions.Cart("s").Add("unknown-id", 1)

	svc := NewCheckoutService(catalog, sessions)
	require.NoError(t, svc.Checkout("s"))

	// checkout clears unconditionally, dangling lines included
	require.Empty(t, sessions.Cart("s").Items())

	// a second attempt finds an empty cart again
	require.ErrorIs(t, svc.Checkout("s"), ErrEmptyCart)
}
