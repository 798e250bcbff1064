// Package session keeps the login state of one user agent.
//
// A session is either anonymous or authenticated with an Identity. The only
// transitions are Establish (anonymous -> authenticated) and Clear
// (authenticated -> anonymous).
package session

import (
	"errors"
	"fmt"

	"github.com/gin-contrib/sessions"

	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/models"
)

var (
	ErrAlreadyAuthenticated = errors.New("session is already authenticated")
	ErrNotAuthenticated     = errors.New("session is not authenticated")
)

type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Identity is what an authenticated session carries.
type Identity struct {
	UserID   uint64      `json:"user_id"`
	UserName string      `json:"user_name"`
	Role     models.Role `json:"role"`
}

// Session wraps the underlying store-backed session.
type Session struct {
	store sessions.Session
}

func New(store sessions.Session) *Session {
	return &Session{store: store}
}

// State reports the current state. A stored record missing any identity
// field is treated as anonymous.
func (s *Session) State() State {
	if _, ok := s.Identity(); ok {
		return StateAuthenticated
	}
	return StateAnonymous
}

// Identity returns the authenticated identity, if any.
func (s *Session) Identity() (Identity, bool) {
	userID, ok := toUint64(s.store.Get(constants.SessionKeyUserID))
	if !ok || userID == 0 {
		return Identity{}, false
	}
	userName, ok := s.store.Get(constants.SessionKeyUserName).(string)
	if !ok {
		return Identity{}, false
	}
	role, ok := s.store.Get(constants.SessionKeyRole).(string)
	if !ok || !models.Role(role).Valid() {
		return Identity{}, false
	}

	return Identity{
		UserID:   userID,
		UserName: userName,
		Role:     models.Role(role),
	}, true
}

// Establish moves an anonymous session to authenticated and saves it.
func (s *Session) Establish(id Identity) error {
	if s.State() == StateAuthenticated {
		return ErrAlreadyAuthenticated
	}

	s.store.Set(constants.SessionKeyUserID, id.UserID)
	s.store.Set(constants.SessionKeyUserName, id.UserName)
	s.store.Set(constants.SessionKeyRole, string(id.Role))
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear moves an authenticated session back to anonymous and saves it.
func (s *Session) Clear() error {
	if s.State() != StateAuthenticated {
		return ErrNotAuthenticated
	}

	s.store.Clear()
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func toUint64(v interface{}) (uint64, bool) {
	switch v := v.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
