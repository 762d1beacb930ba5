package repositories

import "packstock/pkg/domain/entities"

// StockRepository provides access to the per-kind FIFO stock queues
type StockRepository interface {
	// Add appends an item to the tail of its kind's queue,
	// creating the queue if the kind is new.
	Add(item entities.Item)

	// Withdraw removes and returns the oldest item of the given kind whose
	// volume exactly matches. Items before and after the removed one keep
	// their relative order. Returns entities.ErrNoStock when the kind is
	// unknown, its queue is empty, or no volume matches.
	Withdraw(kind entities.Kind, volume entities.Volume) (entities.Item, error)

	// Count returns the number of items currently held for the kind.
	Count(kind entities.Kind) int

	// ItemsFor returns the kind's items oldest-first.
	ItemsFor(kind entities.Kind) []entities.Item

	// Kinds returns all kinds that currently hold at least one item, sorted.
	Kinds() []entities.Kind
}
