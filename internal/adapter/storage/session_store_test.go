package storage_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/rcastano/creator-store/internal/adapter/storage"
)

func TestSessionStore_GetOrCreate(t *testing.T) {
	store := storage.NewSessionStore()
	sessionID := uuid.NewString()

	cart := store.Cart(sessionID)
	cart.Add("ebook-versioning", 2)

	// same session, same aggregate
	require.Equal(t, 2, store.Cart(sessionID).Items()[0].Quantity)
	require.Equal(t, 1, store.Len())

	// different session, fresh aggregate
	other := store.Cart(uuid.NewString())
	require.Empty(t, other.Items())
	require.Equal(t, 2, store.Len())
}

func TestSessionStore_Drop(t *testing.T) {
	store := storage.NewSessionStore()
	sessionID := uuid.NewString()

	store.Cart(sessionID).Add("ebook-versioning", 1)
	store.Drop(sessionID)
	store.Drop("never-seen")

	require.Equal(t, 0, store.Len())
	require.Empty(t, store.Cart(sessionID).Items(), "re-created session starts empty")
}

func TestSessionStore_ConcurrentSessions(t *testing.T) {
	store := storage.NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := uuid.NewString()
			store.Cart(id).Add("ebook-versioning", 1)
			store.Cart(id)
		}()
	}
	wg.Wait()

	require.Equal(t, 50, store.Len())
}
