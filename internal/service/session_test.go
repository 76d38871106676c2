package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/lotview/auction-ui-api/internal/domain/auth"
	mockauth "github.com/lotview/auction-ui-api/internal/mocks/auth"
	"github.com/lotview/auction-ui-api/internal/testutil"
)

func testProfile() domainauth.Profile {
	return domainauth.Profile{Name: "Amy", Email: "amy@example.com", Role: domainauth.RoleUser}
}

func TestSessionManager_LoginCreatesDayLongSession(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	now := testutil.TestTime()
	mgr := NewSessionManager(SessionManagerOptions{
		Sessions: store,
		Now:      testutil.FixedTimeFunc(now),
	})
	defer mgr.Close()

	sess := mgr.Login(context.Background(), testProfile(), "tok-1")

	require.NotEmpty(t, sess.ID)
	assert.Equal(t, "tok-1", sess.BackendToken)
	assert.Equal(t, now, sess.CreatedAt)
	assert.Equal(t, now.Add(24*time.Hour), sess.ExpiresAt)

	stored, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Profile, stored.Profile)
}

func TestSessionManager_TTLFloorIs24h(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	now := testutil.TestTime()
	mgr := NewSessionManager(SessionManagerOptions{
		Sessions: store,
		TTL:      time.Minute,
		Now:      testutil.FixedTimeFunc(now),
	})
	defer mgr.Close()

	sess := mgr.Login(context.Background(), testProfile(), "")
	assert.Equal(t, now.Add(24*time.Hour), sess.ExpiresAt)
}

func TestSessionManager_LoginSurvivesStoreFailure(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	store.SaveErr = errors.New("redis down")
	mgr := NewSessionManager(SessionManagerOptions{Sessions: store})
	defer mgr.Close()

	sess := mgr.Login(context.Background(), testProfile(), "tok-1")
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "tok-1", sess.BackendToken)
}

func TestSessionManager_RestoreAbsentIsNil(t *testing.T) {
	mgr := NewSessionManager(SessionManagerOptions{Sessions: mockauth.NewMemorySessionStore()})
	defer mgr.Close()

	assert.Nil(t, mgr.Restore(context.Background(), "no-such-session"))
	assert.Nil(t, mgr.Restore(context.Background(), ""))
}

func TestSessionManager_RestoreStoreErrorIsNil(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	store.GetErr = errors.New("redis down")
	mgr := NewSessionManager(SessionManagerOptions{Sessions: store})
	defer mgr.Close()

	assert.Nil(t, mgr.Restore(context.Background(), "whatever"))
}

func TestSessionManager_RestoreExpiredLogsOut(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	var loggedOut []string
	mgr := NewSessionManager(SessionManagerOptions{
		Sessions: store,
		OnLogout: func(id string) { loggedOut = append(loggedOut, id) },
	})
	defer mgr.Close()

	// Plant a session whose expiry has already passed.
	expired := domainauth.Session{
		ID:        "stale",
		Profile:   testProfile(),
		CreatedAt: time.Now().Add(-48 * time.Hour),
		ExpiresAt: time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, store.Save(context.Background(), expired))

	assert.Nil(t, mgr.Restore(context.Background(), "stale"))
	assert.Equal(t, []string{"stale"}, loggedOut)

	_, err := store.Get(context.Background(), "stale")
	assert.Error(t, err)
}

func TestSessionManager_RestoreLiveSession(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	mgr := NewSessionManager(SessionManagerOptions{Sessions: store})
	defer mgr.Close()

	created := mgr.Login(context.Background(), testProfile(), "tok-1")

	got := mgr.Restore(context.Background(), created.ID)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Profile, got.Profile)
}

func TestSessionManager_LogoutIsIdempotent(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	var hookCalls int
	mgr := NewSessionManager(SessionManagerOptions{
		Sessions: store,
		OnLogout: func(string) { hookCalls++ },
	})
	defer mgr.Close()

	sess := mgr.Login(context.Background(), testProfile(), "")

	mgr.Logout(context.Background(), sess.ID)
	mgr.Logout(context.Background(), sess.ID)
	mgr.Logout(context.Background(), "")

	assert.Nil(t, mgr.Restore(context.Background(), sess.ID))
	assert.Equal(t, 2, hookCalls)
}

func TestSessionManager_ExpiryTimerFires(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	done := make(chan string, 1)

	mgr := NewSessionManager(SessionManagerOptions{
		Sessions: store,
		OnLogout: func(id string) { done <- id },
	})
	defer mgr.Close()

	// Plant a session about to expire and restore it, which arms the
	// timer for the short remainder.
	sess := domainauth.Session{
		ID:        "short-lived",
		Profile:   testProfile(),
		CreatedAt: time.Now().Add(-24 * time.Hour),
		ExpiresAt: time.Now().Add(50 * time.Millisecond),
	}
	require.NoError(t, store.Save(context.Background(), sess))
	require.NotNil(t, mgr.Restore(context.Background(), sess.ID))

	select {
	case id := <-done:
		assert.Equal(t, sess.ID, id)
		assert.Nil(t, mgr.Restore(context.Background(), sess.ID))
	case <-time.After(2 * time.Second):
		t.Fatal("expiry timer did not fire")
	}
}

func TestSessionManager_ExtendReschedules(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	now := testutil.TestTime()
	mgr := NewSessionManager(SessionManagerOptions{
		Sessions: store,
		Now:      testutil.FixedTimeFunc(now),
	})
	defer mgr.Close()

	sess := mgr.Login(context.Background(), testProfile(), "tok-1")
	extended := mgr.Extend(context.Background(), sess)

	assert.Equal(t, now.Add(24*time.Hour), extended.ExpiresAt)
	stored, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, extended.ExpiresAt, stored.ExpiresAt)
}
