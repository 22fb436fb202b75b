package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nopickles/nopickles/internal/models"
	"github.com/nopickles/nopickles/internal/session"
	"github.com/nopickles/nopickles/pkg/logger"
)

func TestSessionStart(t *testing.T) {
	store := newTestStore()
	handler := NewSessionHandler(store, newTestMetrics(store), logger.New("error"))

	req := httptest.NewRequest(http.MethodPost, "/api/session/start", nil)
	w := httptest.NewRecorder()

	handler.Start(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp models.SessionStartResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SessionID == "" {
		t.Error("expected a session id")
	}
	if resp.Message != "Welcome to NoPickles! What can I get for you today?" {
		t.Errorf("unexpected message: %s", resp.Message)
	}

	if _, err := store.Get(resp.SessionID); err != nil {
		t.Errorf("session not stored: %v", err)
	}
}

func TestSessionEnd(t *testing.T) {
	store := newTestStore()
	handler := NewSessionHandler(store, newTestMetrics(store), logger.New("error"))

	sess := store.Create()

	// Route through chi to bind the URL param.
	r := chi.NewRouter()
	r.Delete("/api/session/{sessionID}", handler.End)

	req := httptest.NewRequest(http.MethodDelete, "/api/session/"+sess.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if _, err := store.Get(sess.ID); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected session to be deleted, got error %v", err)
	}

	// Ending an already-gone session still succeeds.
	req = httptest.NewRequest(http.MethodDelete, "/api/session/"+sess.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 on repeat end, got %d", w.Code)
	}
}
