package domain

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// IDSource issues entry identifiers. Identifiers are never reissued.
type IDSource interface {
	NextID() string
}

// DefaultIDs issues time-ordered UUIDv7 strings.
var DefaultIDs IDSource = uuidV7{}

type uuidV7 struct{}

func (uuidV7) NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SequenceIDs issues "1", "2", ... in order. Useful where stable ids matter,
// such as tests and fixtures.
type SequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (s *SequenceIDs) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return strconv.Itoa(s.next)
}
