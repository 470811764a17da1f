package memory

import (
	"sync"
	"time"

	"techstore-ai-be/pkg/store"
)

// IdleExpiry is how long a session may sit without activity before a sweep
// removes it.
const IdleExpiry = 24 * time.Hour

// SessionStore keeps conversation sessions in process memory. It is owned by
// the service instance, not a package singleton, so tests and multi-instance
// deployments get isolated state. Expired sessions are reaped lazily on the
// write path; a session that never sees another write anywhere stays until
// some unrelated write triggers the sweep.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*store.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*store.Session),
	}
}

func (s *SessionStore) Get(sessionID string) (*store.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, found := s.sessions[sessionID]
	return sess, found
}

func (s *SessionStore) Put(sess *store.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// History returns the stored turns for a session. Absent sessions yield an
// empty slice, not an error.
func (s *SessionStore) History(sessionID string) []store.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, found := s.sessions[sessionID]; found {
		return sess.History
	}
	return []store.Turn{}
}

// AppendExchange records one completed (user, assistant) turn pair, creating
// the session on first use, then reaps idle sessions.
func (s *SessionStore) AppendExchange(sessionID, userContent, assistantContent string, now time.Time) *store.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, found := s.sessions[sessionID]
	if !found {
		sess = &store.Session{
			ID:           sessionID,
			History:      []store.Turn{},
			CreatedAt:    now,
			LastActivity: now,
		}
		s.sessions[sessionID] = sess
	}

	sess.History = append(sess.History,
		store.Turn{Role: store.RoleUser, Content: userContent},
		store.Turn{Role: store.RoleAssistant, Content: assistantContent},
	)
	sess.LastActivity = now
	sess.TotalMessages += 2

	s.sweepExpiredLocked(now)
	return sess
}

// SweepExpired removes every session idle longer than IdleExpiry and returns
// how many were dropped.
func (s *SessionStore) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepExpiredLocked(now)
}

func (s *SessionStore) sweepExpiredLocked(now time.Time) int {
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastActivity) > IdleExpiry {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// ActiveSessionIDs lists the ids of all live sessions.
func (s *SessionStore) ActiveSessionIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}
