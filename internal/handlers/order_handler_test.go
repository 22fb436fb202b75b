package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nopickles/nopickles/internal/agent"
	"github.com/nopickles/nopickles/internal/models"
	"github.com/nopickles/nopickles/internal/session"
	"github.com/nopickles/nopickles/pkg/logger"
)

func TestCompleteOrder_Success(t *testing.T) {
	store := newTestStore()
	log := logger.New("error")
	handler := NewOrderHandler(store, newTestMetrics(store), log)

	sess := store.Create()
	sess.Do(func(a *agent.Agent, o *models.Order) {
		a.Handle("I want a cheeseburger", o)
		a.Handle("add fries", o)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/order/complete?session_id="+sess.ID, nil)
	w := httptest.NewRecorder()

	handler.Complete(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var confirmed models.CompletedOrder
	if err := json.NewDecoder(w.Body).Decode(&confirmed); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if confirmed.OrderID == "" {
		t.Error("expected an order id")
	}
	if confirmed.Status != "confirmed" {
		t.Errorf("status = %s, want confirmed", confirmed.Status)
	}
	if len(confirmed.Items) != 2 {
		t.Errorf("items = %d, want 2", len(confirmed.Items))
	}

	// The session is discarded on completion.
	if _, err := store.Get(sess.ID); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected session to be deleted, got error %v", err)
	}
}

func TestCompleteOrder_EmptyOrder(t *testing.T) {
	store := newTestStore()
	log := logger.New("error")
	handler := NewOrderHandler(store, newTestMetrics(store), log)

	sess := store.Create()

	req := httptest.NewRequest(http.MethodPost, "/api/order/complete?session_id="+sess.ID, nil)
	w := httptest.NewRecorder()

	handler.Complete(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	// An empty completion attempt must not tear down the session.
	if _, err := store.Get(sess.ID); err != nil {
		t.Errorf("session should survive a failed completion, got error %v", err)
	}
}

func TestCompleteOrder_UnknownSession(t *testing.T) {
	store := newTestStore()
	log := logger.New("error")
	handler := NewOrderHandler(store, newTestMetrics(store), log)

	req := httptest.NewRequest(http.MethodPost, "/api/order/complete?session_id=missing", nil)
	w := httptest.NewRecorder()

	handler.Complete(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestCompleteOrder_MissingSessionID(t *testing.T) {
	store := newTestStore()
	log := logger.New("error")
	handler := NewOrderHandler(store, newTestMetrics(store), log)

	req := httptest.NewRequest(http.MethodPost, "/api/order/complete", nil)
	w := httptest.NewRecorder()

	handler.Complete(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
