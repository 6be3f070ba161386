package chat

import (
	"sync"
	"time"

	"jobquest-utils/pkg/models"
	"jobquest-utils/pkg/utils"
)

// Session is the append-only message log for one conversation.
// Messages are never deleted within a session; an optional cap drops
// the oldest entries once the log exceeds it.
type Session struct {
	ID         string
	maxHistory int
	mu         sync.Mutex
	messages   []models.ConversationMessage
	searched   bool
}

// Append adds a message with the current timestamp
func (s *Session) Append(text, sender string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, models.ConversationMessage{
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now().UTC(),
	})

	if s.maxHistory > 0 && len(s.messages) > s.maxHistory {
		s.messages = s.messages[len(s.messages)-s.maxHistory:]
	}
}

// History returns a copy of the ordered message log
func (s *Session) History() []models.ConversationMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]models.ConversationMessage, len(s.messages))
	copy(history, s.messages)
	return history
}

// MarkSearched records that a job search has run in this session
func (s *Session) MarkSearched() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searched = true
}

// HasSearched reports whether a job search has run in this session
func (s *Session) HasSearched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searched
}

// SessionStore holds active conversation sessions in memory
type SessionStore struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	maxHistory int
}

// NewSessionStore creates an empty session store. maxHistory caps the
// per-session message log; zero means unbounded.
func NewSessionStore(maxHistory int) *SessionStore {
	return &SessionStore{
		sessions:   make(map[string]*Session),
		maxHistory: maxHistory,
	}
}

// Get returns the session for the given ID, creating it if needed.
// An empty ID gets a freshly generated one.
func (st *SessionStore) Get(id string) *Session {
	if id == "" {
		id = utils.GenerateConversationID()
	}

	st.mu.RLock()
	session, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return session
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if session, ok := st.sessions[id]; ok {
		return session
	}

	session = &Session{ID: id, maxHistory: st.maxHistory}
	st.sessions[id] = session
	return session
}

// Count returns the number of active sessions
func (st *SessionStore) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
