package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nopickles/nopickles/internal/agent"
	"github.com/nopickles/nopickles/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Session binds one conversation's agent and order together. The embedded
// mutex serializes agent calls against the order: the agent itself performs
// no locking and assumes at most one in-flight call per order.
type Session struct {
	ID    string
	Agent *agent.Agent
	Order *models.Order

	mu       sync.Mutex
	lastSeen time.Time
}

// Do runs fn while holding the session's lock and refreshes the idle timer.
// All access to the session's agent or order must go through here.
func (s *Session) Do(fn func(a *agent.Agent, o *models.Order)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	fn(s.Agent, s.Order)
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}

// Store keeps active sessions keyed by id. Sessions idle longer than the
// TTL are reaped by a janitor goroutine started with the store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl      time.Duration
	newAgent func() *agent.Agent
	done     chan struct{}
}

// NewStore creates a session store. newAgent constructs the conversation
// agent for each fresh session.
func NewStore(ttl time.Duration, newAgent func() *agent.Agent) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		newAgent: newAgent,
		done:     make(chan struct{}),
	}
}

// Create starts a new session with a random id and an empty order.
func (s *Store) Create() *Session {
	id := uuid.New().String()
	sess := &Session{
		ID:       id,
		Agent:    s.newAgent(),
		Order:    models.NewOrder(id),
		lastSeen: time.Now(),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session with the given id.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete discards a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of active sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartJanitor reaps expired sessions every interval until Close is called.
func (s *Store) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.reap(time.Now())
			case <-s.done:
				return
			}
		}
	}()
}

// Close stops the janitor.
func (s *Store) Close() {
	close(s.done)
}

// reap removes sessions whose last activity predates now minus the TTL and
// returns how many were dropped.
func (s *Store) reap(now time.Time) int {
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
