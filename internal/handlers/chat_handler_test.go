package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nopickles/nopickles/internal/agent"
	"github.com/nopickles/nopickles/internal/menu"
	"github.com/nopickles/nopickles/internal/metrics"
	"github.com/nopickles/nopickles/internal/models"
	"github.com/nopickles/nopickles/internal/session"
	"github.com/nopickles/nopickles/pkg/logger"
)

func newTestStore() *session.Store {
	catalog := menu.NewCatalog()
	return session.NewStore(time.Minute, func() *agent.Agent { return agent.New(catalog) })
}

func newTestMetrics(store *session.Store) *metrics.Registry {
	return metrics.NewRegistry(func() float64 { return float64(store.Len()) })
}

func chatBody(t *testing.T, sessionID, message string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(models.ChatRequest{SessionID: sessionID, Message: message})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	return bytes.NewBuffer(body)
}

func TestChat_AddsItem(t *testing.T) {
	store := newTestStore()
	log := logger.New("error")
	handler := NewChatHandler(store, newTestMetrics(store), log)

	sess := store.Create()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", chatBody(t, sess.ID, "I want a cheeseburger"))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Added Cheeseburger ($9.99) to your order." {
		t.Errorf("unexpected message: %s", resp.Message)
	}
	if resp.Order.Total != 9.99 {
		t.Errorf("order total = %v, want 9.99", resp.Order.Total)
	}
	if len(resp.Order.Items) != 1 {
		t.Errorf("order items = %d, want 1", len(resp.Order.Items))
	}
	if len(resp.Suggestions) == 0 {
		t.Error("expected upsell suggestions after an add")
	}
}

func TestChat_UnknownSession(t *testing.T) {
	store := newTestStore()
	log := logger.New("error")
	handler := NewChatHandler(store, newTestMetrics(store), log)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", chatBody(t, "no-such-session", "hi"))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestChat_InvalidBody(t *testing.T) {
	store := newTestStore()
	log := logger.New("error")
	handler := NewChatHandler(store, newTestMetrics(store), log)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestChat_ConversationKeepsState(t *testing.T) {
	store := newTestStore()
	log := logger.New("error")
	handler := NewChatHandler(store, newTestMetrics(store), log)

	sess := store.Create()

	messages := []string{"I want a cheeseburger", "add a cola", "add a cola"}
	var resp models.ChatResponse
	for _, message := range messages {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", chatBody(t, sess.ID, message))
		w := httptest.NewRecorder()
		handler.Chat(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("message %q: expected status 200, got %d", message, w.Code)
		}
		resp = models.ChatResponse{}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}

	if len(resp.Order.Items) != 2 {
		t.Fatalf("order items = %d, want 2", len(resp.Order.Items))
	}
	if resp.Order.Items[1].Quantity != 2 {
		t.Errorf("cola quantity = %d, want 2", resp.Order.Items[1].Quantity)
	}
}
