// Package session keeps per-visitor view state in memory, keyed by a cookie.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/Fawzia2025/cb-care-live/internal/config"
	"github.com/Fawzia2025/cb-care-live/pkg/logger"
)

// Module provides the session store and its idle sweeper
var Module = fx.Module("session",
	fx.Provide(NewStore),
	fx.Invoke(RegisterSweeperLifecycle),
)

// Store holds all live sessions
type Store struct {
	cookieName string
	ttl        time.Duration
	secure     bool
	log        *slog.Logger
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore(cfg *config.Config, log *slog.Logger) *Store {
	return &Store{
		cookieName: cfg.Session.CookieName,
		ttl:        cfg.Session.TTL,
		secure:     cfg.Session.SecureCookie,
		log:        log.With(logger.Scope("session")),
		now:        time.Now,
		sessions:   make(map[string]*Session),
	}
}

// Lookup returns the visitor's session without creating one. Read-only
// requests use it so visitors who never interact leave nothing behind.
func (s *Store) Lookup(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(s.cookieName)
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	sess, ok := s.sessions[c.Value]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}

	sess.touch(s.now())
	return sess, true
}

// Get returns the visitor's session, creating one (and setting the cookie)
// when the request carries no known session id.
func (s *Store) Get(w http.ResponseWriter, r *http.Request) *Session {
	if sess, ok := s.Lookup(r); ok {
		return sess
	}

	sess := newSession(uuid.NewString(), s.now())

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	s.log.Debug("session created", slog.String("session_id", sess.ID))
	return sess
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RegisterSweeperLifecycle runs Sweep on an interval while the app is up
func RegisterSweeperLifecycle(lc fx.Lifecycle, s *Store, cfg *config.Config) {
	interval := cfg.Session.SweepInterval
	if interval <= 0 {
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-stop:
						return
					case <-ticker.C:
						if n := s.Sweep(); n > 0 {
							s.log.Debug("expired sessions swept", slog.Int("count", n))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			select {
			case <-done:
			case <-ctx.Done():
			}
			return nil
		},
	})
}
