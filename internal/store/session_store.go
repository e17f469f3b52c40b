package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

// DefaultCapacity is the number of sessions kept when no capacity is configured.
const DefaultCapacity = 1000

// ErrSuperseded is returned when a search finishes after a newer one for the same session began.
var ErrSuperseded = errors.New("search superseded by a newer request")

type session struct {
	latest  string
	dataset *stats.Dataset
}

// SessionStore keeps the last fetched dataset per client session in memory.
// Within a session the most recently begun search wins; older results are discarded on commit.
// At most capacity sessions are kept; the least recently used one is evicted first.
type SessionStore struct {
	mu       sync.Mutex
	sessions *lru.Cache[string, *session]
	newToken func() string
}

// NewSessionStore constructs an empty SessionStore holding up to capacity sessions.
// A non-positive capacity uses DefaultCapacity.
func NewSessionStore(capacity int) *SessionStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, *session](capacity)
	return &SessionStore{
		sessions: cache,
		newToken: uuid.NewString,
	}
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Begin registers a new search for sessionID and returns its token.
// Any search begun earlier for the same session becomes stale.
func (s *SessionStore) Begin(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.newToken()
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		sess = &session{}
		s.sessions.Add(sessionID, sess)
	}
	sess.latest = token
	return token
}

// Commit stores ds for sessionID if token is still the latest search. It reports whether ds was kept.
// A session evicted while its search ran cannot commit.
func (s *SessionStore) Commit(sessionID, token string, ds stats.Dataset) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok || sess.latest != token {
		return false
	}
	sess.dataset = &ds
	return true
}

// Last returns the most recently committed dataset for sessionID.
func (s *SessionStore) Last(sessionID string) (stats.Dataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok || sess.dataset == nil {
		return stats.Dataset{}, false
	}
	return *sess.dataset, true
}

// Len returns the number of tracked sessions.
func (s *SessionStore) Len() int {
	return s.sessions.Len()
}
