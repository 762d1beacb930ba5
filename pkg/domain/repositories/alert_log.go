package repositories

import "packstock/pkg/domain/entities"

// AlertLog retains the most recent operational alerts
type AlertLog interface {
	// Record stores a new alert and surfaces it to the operator immediately.
	// When the log is full the oldest alert is evicted. Never fails.
	Record(message string)

	// List returns the retained alerts oldest-first; empty when none are held.
	List() []entities.Alert
}
