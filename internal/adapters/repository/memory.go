package repository

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/autoweb/sitesmith/internal/domain/model"
)

const defaultShardCount = 16

// MemoryStore is a sharded in-memory artifact store. Sharding is by
// business ID so concurrent workers finishing different businesses do not
// contend on one lock, while variant numbering for a single business stays
// serialized under its shard lock.
type MemoryStore struct {
	shards     []*shard
	shardCount int
	total      atomic.Int64
}

type shard struct {
	mu       sync.RWMutex
	variants map[string][]model.TemplateArtifact
}

// NewMemoryStore creates a store with the configured shard count.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{shardCount: defaultShardCount}
	for _, opt := range opts {
		opt(s)
	}
	s.shards = make([]*shard, s.shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{variants: make(map[string][]model.TemplateArtifact)}
	}
	return s
}

func (s *MemoryStore) shardFor(businessID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(businessID))
	return s.shards[h.Sum32()%uint32(s.shardCount)]
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, artifact model.TemplateArtifact) (model.TemplateArtifact, error) {
	if artifact.BusinessID == "" {
		return model.TemplateArtifact{}, ErrMissingID
	}

	sh := s.shardFor(artifact.BusinessID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	artifact.VariantNumber = len(sh.variants[artifact.BusinessID]) + 1
	sh.variants[artifact.BusinessID] = append(sh.variants[artifact.BusinessID], artifact)
	s.total.Add(1)
	return artifact, nil
}

// List implements Store.
func (s *MemoryStore) List(_ context.Context, businessID string) ([]model.TemplateArtifact, error) {
	sh := s.shardFor(businessID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	stored, ok := sh.variants[businessID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]model.TemplateArtifact, len(stored))
	copy(out, stored)
	return out, nil
}

// Latest implements Store.
func (s *MemoryStore) Latest(_ context.Context, businessID string) (model.TemplateArtifact, error) {
	sh := s.shardFor(businessID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	stored, ok := sh.variants[businessID]
	if !ok || len(stored) == 0 {
		return model.TemplateArtifact{}, ErrNotFound
	}
	return stored[len(stored)-1], nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	return int(s.total.Load())
}

// Businesses implements Store.
func (s *MemoryStore) Businesses(_ context.Context) int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.variants)
		sh.mu.RUnlock()
	}
	return n
}
