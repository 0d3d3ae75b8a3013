// Package session is the explicit login context threaded through every call
// to the turfics API. It replaces ambient token lookups with an object that is
// begun on login, ended on logout and invalidated when the API rejects it.
package session

import (
	"sync"
	"time"

	"github.com/savioruz/turfics/pkg/constant"
)

type Identity struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Event is recorded once when an active session is invalidated.
type Event struct {
	Reason   string `json:"reason"`
	Redirect string `json:"redirect"`
}

type Session struct {
	mu          sync.RWMutex
	token       string
	identity    Identity
	active      bool
	invalidated *Event
}

func New() *Session {
	return &Session{}
}

// Begin starts the session with a token obtained from login.
func (s *Session) Begin(token string, id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.identity = id
	s.active = token != ""
	s.invalidated = nil
}

// End is the logout teardown. Listeners are not notified.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.identity = Identity{}
	s.active = false
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *Session) Identity() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.identity
}

func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.active
}

// Invalidate clears the token and records the login redirect. Only the first
// call on an active session records it; it returns whether it did.
func (s *Session) Invalidate(reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return false
	}

	s.token = ""
	s.active = false
	s.invalidated = &Event{Reason: reason, Redirect: constant.LoginPath}

	return true
}

// Invalidated returns the invalidation event, if any. The auth middleware
// turns it into the login redirect of the response.
func (s *Session) Invalidated() (Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.invalidated == nil {
		return Event{}, false
	}

	return *s.invalidated, true
}
