package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo keeps records in process memory. It has the same revision
// semantics as ResumeRepo and backs the server when no database is
// configured.
type MemoryRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]Record
	now     func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: map[uuid.UUID]Record{}, now: time.Now}
}

func (m *MemoryRepo) Get(_ context.Context, userID uuid.UUID) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[userID]
	if !ok {
		return Record{}, ErrNotFound
	}
	rec.Document = append([]byte(nil), rec.Document...)
	return rec, nil
}

func (m *MemoryRepo) Upsert(_ context.Context, rec Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now().UTC()
	rec.Document = append([]byte(nil), rec.Document...)
	prev, exists := m.records[rec.UserID]
	if exists {
		if rec.Revision != 0 && rec.Revision <= prev.Revision {
			return Record{}, ErrStaleRevision
		}
		rec.CreatedAt = prev.CreatedAt
		if rec.Revision < prev.Revision {
			rec.Revision = prev.Revision
		}
	} else {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	m.records[rec.UserID] = rec
	return rec, nil
}
