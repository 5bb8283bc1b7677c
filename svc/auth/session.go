// Package auth holds the signed-in user of a single-user session.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/wintryx/progressmaker/pkg/logger"
)

var ErrInvalidUser = errors.New("auth: user id is required")

type User struct {
	ID   string
	Name string
}

// Session tracks whether a user is signed in. It is safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	user      *User
	listeners []func(context.Context, User)
	logger    *slog.Logger
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("auth"))
	return s
}

// Login signs u in, replacing any current user.
func (s *Session) Login(u User) error {
	if u.ID == "" {
		return ErrInvalidUser
	}
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}

// Current returns the signed-in user.
func (s *Session) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// OnLogout registers fn to run after a user is signed out.
func (s *Session) OnLogout(fn func(context.Context, User)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Logout ends the session. Logging out without a user does nothing.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	u := s.user
	s.user = nil
	listeners := append(([]func(context.Context, User))(nil), s.listeners...)
	s.mu.Unlock()

	if u == nil {
		return nil
	}
	s.logger.InfoContext(ctx, "session ended", slog.String("user_id", u.ID))
	for _, fn := range listeners {
		fn(ctx, *u)
	}
	return nil
}
