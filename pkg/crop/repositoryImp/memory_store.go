package repositoryImp

import (
	"fmt"
	"sync"
	"time"

	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/crop/repository"
)

const entityName = "crop record"

// MemoryStore keeps records keyed by id with a separate insertion order.
// Nothing survives the process; the store is rebuilt from the seed on start.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uint]*entities.CropRecord
	order   []uint
	nextID  uint
	now     func() time.Time
}

type Option func(*MemoryStore)

// WithClock replaces time.Now for the created/updated stamps.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

var _ repository.CropRepository = (*MemoryStore)(nil)

// NewMemoryStore loads seed in order. Seed rows without an id are numbered
// after the highest seeded id; a repeated id is a broken seed.
func NewMemoryStore(seed []entities.CropRecord, opts ...Option) (*MemoryStore, error) {
	s := &MemoryStore{
		records: make(map[uint]*entities.CropRecord, len(seed)),
		order:   make([]uint, 0, len(seed)),
		nextID:  1,
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}

	for _, r := range seed {
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	for _, r := range seed {
		rec := r.Clone()
		if rec.ID == 0 {
			rec.ID = s.nextID
			s.nextID++
		}
		if _, dup := s.records[rec.ID]; dup {
			return nil, apperr.Upstream("seed", fmt.Errorf("duplicate record id %d", rec.ID))
		}
		s.records[rec.ID] = &rec
		s.order = append(s.order, rec.ID)
	}
	return s, nil
}

func (s *MemoryStore) List() []entities.CropRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.CropRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id].Clone())
	}
	return out
}

func (s *MemoryStore) Get(id uint) (entities.CropRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return entities.CropRecord{}, apperr.NotFound(entityName, id)
	}
	return r.Clone(), nil
}

// Insert ignores rec.ID and assigns the next counter value.
func (s *MemoryStore) Insert(rec entities.CropRecord) (entities.CropRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := rec.Clone()
	r.ID = s.nextID
	s.nextID++
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	s.records[r.ID] = &r
	s.order = append(s.order, r.ID)
	return r.Clone(), nil
}

func (s *MemoryStore) Replace(id uint, patch entities.CropPatch) (entities.CropRecord, error) {
	return s.ReplaceIf(id, patch, nil)
}

// ReplaceIf patches record id only while keep accepts its current state.
// A rejected record reads as missing. A nil keep accepts everything.
func (s *MemoryStore) ReplaceIf(id uint, patch entities.CropPatch, keep func(entities.CropRecord) bool) (entities.CropRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok || (keep != nil && !keep(*r)) {
		return entities.CropRecord{}, apperr.NotFound(entityName, id)
	}
	next := r.Clone()
	patch.Apply(&next)
	next.ID = id
	next.UpdatedAt = s.now()
	s.records[id] = &next
	return next.Clone(), nil
}

func (s *MemoryStore) Remove(id uint) (entities.CropRecord, error) {
	return s.RemoveIf(id, nil)
}

// RemoveIf is Remove guarded the same way as ReplaceIf.
func (s *MemoryStore) RemoveIf(id uint, keep func(entities.CropRecord) bool) (entities.CropRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok || (keep != nil && !keep(*r)) {
		return entities.CropRecord{}, apperr.NotFound(entityName, id)
	}
	delete(s.records, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return r.Clone(), nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// NextID reports the id the next Insert will assign.
func (s *MemoryStore) NextID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}
