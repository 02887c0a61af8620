package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/campaign-triage/internal/triage"
)

// maxStoredBatches bounds the in-memory registry. Batches exist so a client
// can re-evaluate with different parameters without re-uploading; they are
// session state, not persistence, and the oldest is dropped when the cap is
// hit.
const maxStoredBatches = 64

// StoredBatch is an uploaded dataset prepared for evaluation.
type StoredBatch struct {
	ID          uuid.UUID
	Filename    string
	Batch       *triage.Batch
	SkippedRows int
	CreatedAt   time.Time
}

// BatchRegistry is an in-memory store of prepared batches keyed by ID.
type BatchRegistry struct {
	mu      sync.RWMutex
	batches map[uuid.UUID]*StoredBatch
}

// NewBatchRegistry creates an empty registry.
func NewBatchRegistry() *BatchRegistry {
	return &BatchRegistry{batches: make(map[uuid.UUID]*StoredBatch)}
}

// Put stores a batch, evicting the oldest entry when the cap is exceeded.
func (r *BatchRegistry) Put(b *StoredBatch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.batches) >= maxStoredBatches {
		var oldest *StoredBatch
		for _, existing := range r.batches {
			if oldest == nil || existing.CreatedAt.Before(oldest.CreatedAt) {
				oldest = existing
			}
		}
		if oldest != nil {
			delete(r.batches, oldest.ID)
		}
	}
	r.batches[b.ID] = b
}

// Get returns the batch with the given ID, or nil.
func (r *BatchRegistry) Get(id uuid.UUID) *StoredBatch {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.batches[id]
}

// Len returns the number of stored batches.
func (r *BatchRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.batches)
}
