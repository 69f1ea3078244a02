package editor

import (
	"sync"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

// PersistMode says how a change should reach storage.
type PersistMode int

const (
	PersistNone PersistMode = iota
	PersistDebounced
	PersistImmediate
)

func (m PersistMode) String() string {
	switch m {
	case PersistDebounced:
		return "debounced"
	case PersistImmediate:
		return "immediate"
	}
	return "none"
}

// Change describes the outcome of one dispatched action.
type Change struct {
	Action  Action
	Changed bool
	Persist PersistMode
}

type Listener func(doc domain.Resume, ch Change)

// Store owns the document of one editing session. All edits go through
// Dispatch; readers get deep copies, so they only ever see fully applied
// states.
type Store struct {
	mu        sync.RWMutex
	doc       domain.Resume
	ids       domain.IDSource
	listeners []Listener
}

func NewStore(doc domain.Resume, ids domain.IDSource) *Store {
	if ids == nil {
		ids = domain.DefaultIDs
	}
	return &Store{doc: doc.Clone(), ids: ids}
}

func (s *Store) Snapshot() domain.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

func (s *Store) IDs() domain.IDSource { return s.ids }

// Subscribe registers l to be called after every change. Listeners run on
// the dispatching goroutine, outside the store lock.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Dispatch validates a against the current document, applies it and
// notifies listeners when the document changed.
func (s *Store) Dispatch(a Action) (Change, error) {
	s.mu.Lock()
	if err := Validate(s.doc, a); err != nil {
		s.mu.Unlock()
		return Change{Action: a}, err
	}
	a = s.withIDs(a)
	next, changed := Apply(s.doc, a)
	ch := Change{Action: a, Changed: changed, Persist: persistMode(a, changed)}
	if changed {
		s.doc = next
	}
	listeners := append([]Listener(nil), s.listeners...)
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	if changed {
		for _, l := range listeners {
			l(snapshot, ch)
		}
	}
	return ch, nil
}

// Replace swaps the whole document. Only loading and resetting use it; it
// does not notify listeners.
func (s *Store) Replace(doc domain.Resume) {
	s.mu.Lock()
	s.doc = doc.Clone()
	s.mu.Unlock()
}

// withIDs issues the ids of new entries and categories. Ids supplied by
// the caller are replaced, so an id is never reused within a session.
func (s *Store) withIDs(a Action) Action {
	switch v := a.(type) {
	case AddEntry:
		v.ID = s.ids.NextID()
		return v
	case AddCategory:
		v.ID = s.ids.NextID()
		return v
	}
	return a
}

func persistMode(a Action, changed bool) PersistMode {
	if !changed {
		return PersistNone
	}
	if t, ok := a.(SetTemplate); ok {
		if t.SkipPersist {
			return PersistNone
		}
		return PersistImmediate
	}
	return PersistDebounced
}
