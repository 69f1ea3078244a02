package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNoSession = errors.New("usecase: no editing session")

// Registry holds the editing session of every active user.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	factory  func(user uuid.UUID) *Session
}

func NewRegistry(factory func(user uuid.UUID) *Session) *Registry {
	return &Registry{sessions: map[uuid.UUID]*Session{}, factory: factory}
}

// Open returns the user's session, creating it and running its load
// protocol on first use.
func (r *Registry) Open(ctx context.Context, user uuid.UUID) *Session {
	r.mu.Lock()
	s, ok := r.sessions[user]
	if !ok {
		s = r.factory(user)
		r.sessions[user] = s
	}
	r.mu.Unlock()
	s.Load(ctx)
	return s
}

// Lookup returns an existing session without creating one.
func (r *Registry) Lookup(user uuid.UUID) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[user]
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

// Close flushes pending saves of every session and forgets them.
func (r *Registry) Close(ctx context.Context) {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = map[uuid.UUID]*Session{}
	r.mu.Unlock()
	for _, s := range sessions {
		s.Close(ctx)
	}
}

// SessionFactory builds sessions whose remote copy lives in docs and whose
// local copy comes from cache.
func SessionFactory(docs *Documents, cache func(user uuid.UUID) LocalCache, deps SessionDeps) func(user uuid.UUID) *Session {
	return func(user uuid.UUID) *Session {
		d := deps
		d.Remote = docs.Remote(user)
		if cache != nil {
			d.Local = cache(user)
		}
		return NewSession(user, d)
	}
}
