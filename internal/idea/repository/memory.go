package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/siteideas/website-ideas/internal/idea"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory repository used by unit tests and when the
// service runs without MongoDB. Ids have the same ObjectID hex shape as the
// Mongo-backed repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*entry
	seq   uint64
}

type entry struct {
	rec *idea.IdeaRecord
	seq uint64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*entry)}
}

func (m *MemoryRepo) Insert(_ context.Context, rec *idea.IdeaRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = primitive.NewObjectID().Hex()
	rec.CreatedAt = now()
	rec.UpdatedAt = rec.CreatedAt
	m.seq++
	m.store[rec.ID] = &entry{rec: rec.Clone(), seq: m.seq}
	return nil
}

func (m *MemoryRepo) FindByID(_ context.Context, id string) (*idea.IdeaRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.store[id]; ok {
		return e.rec.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) FindAll(_ context.Context) ([]idea.IdeaRecord, error) {
	m.mu.RLock()
	entries := make([]*entry, 0, len(m.store))
	for _, e := range m.store {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.rec.CreatedAt.Equal(b.rec.CreatedAt) {
			return a.rec.CreatedAt.After(b.rec.CreatedAt)
		}
		return a.seq > b.seq
	})
	out := make([]idea.IdeaRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e.rec.Clone())
	}
	return out, nil
}

func (m *MemoryRepo) Ping(context.Context) error { return nil }
