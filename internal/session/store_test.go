package session

import (
	"errors"
	"testing"
	"time"

	"github.com/nopickles/nopickles/internal/agent"
	"github.com/nopickles/nopickles/internal/menu"
	"github.com/nopickles/nopickles/internal/models"
)

func newTestStore(ttl time.Duration) *Store {
	catalog := menu.NewCatalog()
	return NewStore(ttl, func() *agent.Agent { return agent.New(catalog) })
}

func TestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(time.Minute)

	sess := store.Create()
	if sess.ID == "" {
		t.Fatal("expected a session id")
	}
	if sess.Order == nil || sess.Order.SessionID != sess.ID {
		t.Errorf("order not bound to session: %+v", sess.Order)
	}
	if !sess.Order.IsEmpty() {
		t.Error("new session must start with an empty order")
	}

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error = %v", err)
	}
	if got != sess {
		t.Error("Get() returned a different session")
	}

	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestStore_GetUnknown(t *testing.T) {
	store := newTestStore(time.Minute)

	if _, err := store.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrSessionNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(time.Minute)

	sess := store.Create()
	store.Delete(sess.ID)

	if _, err := store.Get(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after Delete error = %v, want ErrSessionNotFound", err)
	}

	// Deleting twice is fine.
	store.Delete(sess.ID)
}

func TestStore_ReapExpired(t *testing.T) {
	store := newTestStore(time.Minute)

	stale := store.Create()
	fresh := store.Create()

	// Push the stale session's activity into the past.
	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	removed := store.reap(time.Now())
	if removed != 1 {
		t.Fatalf("reap removed %d sessions, want 1", removed)
	}
	if _, err := store.Get(stale.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("stale session should be gone")
	}
	if _, err := store.Get(fresh.ID); err != nil {
		t.Errorf("fresh session should survive, got error %v", err)
	}
}

func TestSession_DoRefreshesActivity(t *testing.T) {
	store := newTestStore(time.Minute)
	sess := store.Create()

	sess.mu.Lock()
	sess.lastSeen = time.Now().Add(-2 * time.Minute)
	sess.mu.Unlock()

	sess.Do(func(a *agent.Agent, o *models.Order) {
		a.Handle("I want a cola", o)
	})

	if removed := store.reap(time.Now()); removed != 0 {
		t.Errorf("reap removed %d sessions, want 0 after activity", removed)
	}
	if sess.Order.Total != 2.49 {
		t.Errorf("total = %v, want 2.49", sess.Order.Total)
	}
}
