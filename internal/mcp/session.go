package mcp

import (
	"sync"

	"github.com/google/uuid"
)

// Session captures the protocol metadata negotiated by one initialize call.
// Sessions are never mutated or removed; their lifetime is the process
// lifetime.
type Session struct {
	ID                 string
	ProtocolVersion    string
	ClientCapabilities map[string]interface{}
}

// SessionStore is the process-wide session map. It is written only on the
// initialize path; insertion must be safe under concurrent initialize calls.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// Create generates a fresh unique session id and records the negotiated
// metadata under it. Keys are generated internally, never client-supplied,
// so concurrent writers cannot collide.
func (s *SessionStore) Create(protocolVersion string, clientCapabilities map[string]interface{}) *Session {
	sess := &Session{
		ID:                 uuid.NewString(),
		ProtocolVersion:    protocolVersion,
		ClientCapabilities: clientCapabilities,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for the given id, or nil if unknown.
func (s *SessionStore) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Len returns the number of recorded sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
