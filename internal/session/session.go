// Package session keeps rendered documents alive between requests of the
// preview service.
package session

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/markwidget/markup"
)

// Session is one loaded document and its interactive state.
type Session struct {
	mu sync.Mutex

	ID          string    `json:"doc_id"`
	Title       string    `json:"title"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	state *markup.State
}

// New wraps state in a session with a fresh id.
func New(title string, content []byte, state *markup.State) *Session {
	now := time.Now()
	return &Session{
		ID:          NewID(),
		Title:       title,
		ContentHash: ContentHashHex(content),
		CreatedAt:   now,
		UpdatedAt:   now,
		state:       state,
	}
}

// Do runs fn with exclusive access to the session's state. Rendering and
// applying changes must both go through Do.
func (s *Session) Do(fn func(*markup.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
	s.UpdatedAt = time.Now()
}

func (s *Session) lastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.UpdatedAt
}

// Snapshot is a read-only, JSON-safe copy of session metadata.
type Snapshot struct {
	ID          string    `json:"doc_id"`
	Title       string    `json:"title"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Dropdowns   int       `json:"dropdowns"`
	Edits       int       `json:"edits"`
}

// Snapshot returns a copy of the session metadata.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:          s.ID,
		Title:       s.Title,
		ContentHash: s.ContentHash,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Dropdowns:   s.state.Dropdowns(),
		Edits:       s.state.Edits(),
	}
}

// Store is a thread-safe in-memory session registry with TTL eviction.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	log      *slog.Logger
}

func NewStore(ttl time.Duration, log *slog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		log:      log,
	}
}

func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

// Delete removes a session and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Cleanup removes expired sessions and returns how many were removed.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastUsed()) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run evicts expired sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Cleanup(); n > 0 {
				s.log.Info("sessions evicted", "count", n, "remaining", s.Len())
			}
		}
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
