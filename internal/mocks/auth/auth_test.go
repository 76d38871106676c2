package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
	"github.com/lotview/auction-ui-api/internal/ports"
)

func TestMockAuthProvider_Begin_Defaults(t *testing.T) {
	provider := NewMockAuthProvider()
	ctx := context.Background()

	input := ports.BeginInput{RedirectURL: "http://localhost:8080/callback"}
	authURL, state, nonce, err := provider.Begin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", authURL)
	assert.Equal(t, "state-1", state)
	assert.Equal(t, "nonce-1", nonce)

	_, state2, nonce2, err2 := provider.Begin(ctx, input)
	require.NoError(t, err2)
	assert.Equal(t, "state-2", state2)
	assert.Equal(t, "nonce-2", nonce2)
}

func TestMockAuthProvider_Exchange_Default(t *testing.T) {
	provider := NewMockAuthProvider()

	id, err := provider.Exchange(context.Background(), ports.ExchangeInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)
	assert.Equal(t, "mock-user-1", id.UserID)
	assert.True(t, id.ExpiresAt.After(time.Now()))
}

func TestMemorySessionStore_Roundtrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{
		ID:        "s1",
		Profile:   domainauth.Profile{Name: "Amy", Email: "amy@example.com", Role: domainauth.RoleUser},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))
	require.Equal(t, 1, store.Len())

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess.Profile, got.Profile)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemorySessionStore_ForcedErrors(t *testing.T) {
	store := NewMemorySessionStore()
	store.SaveErr = ErrNotFound

	err := store.Save(context.Background(), domainauth.Session{ID: "s1"})
	assert.Equal(t, ErrNotFound, err)
}
