// Package memory implements the in-memory stock and alert stores.
package memory

import (
	"sort"
	"sync"

	"packstock/pkg/domain/entities"
	"packstock/pkg/domain/repositories"
)

// StockRepository provides in-memory per-kind FIFO stock storage
type StockRepository struct {
	mu     sync.RWMutex
	queues map[entities.Kind][]entities.Item
}

// NewStockRepository creates a new in-memory stock repository
func NewStockRepository() *StockRepository {
	return &StockRepository{
		queues: make(map[entities.Kind][]entities.Item),
	}
}

// Verify interface compliance
var _ repositories.StockRepository = (*StockRepository)(nil)

// Add appends the item at the tail of its kind's queue
func (r *StockRepository) Add(item entities.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queues[item.Kind] = append(r.queues[item.Kind], item)
}

// Withdraw removes the oldest item of the kind whose volume matches exactly.
// An emptied queue stays in the map; reads treat it the same as an absent kind.
func (r *StockRepository) Withdraw(kind entities.Kind, volume entities.Volume) (entities.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue := r.queues[kind]
	for i, item := range queue {
		if item.Volume == volume {
			r.queues[kind] = append(queue[:i:i], queue[i+1:]...)
			return item, nil
		}
	}
	return entities.Item{}, entities.ErrNoStock
}

// Count returns the number of items held for the kind
func (r *StockRepository) Count(kind entities.Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.queues[kind])
}

// ItemsFor returns the kind's items oldest-first
func (r *StockRepository) ItemsFor(kind entities.Kind) []entities.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	queue := r.queues[kind]
	out := make([]entities.Item, len(queue))
	copy(out, queue)
	return out
}

// Kinds returns all kinds holding at least one item, sorted
func (r *StockRepository) Kinds() []entities.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]entities.Kind, 0, len(r.queues))
	for kind, queue := range r.queues {
		if len(queue) > 0 {
			kinds = append(kinds, kind)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
