package memory

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"packstock/pkg/domain/entities"
	"packstock/pkg/domain/repositories"
)

// DefaultAlertCapacity is the number of alerts retained when none is configured
const DefaultAlertCapacity = 3

// AlertLog provides a bounded in-memory alert journal. When full, recording a
// new alert evicts the oldest. Every record is also written to the operator
// stream immediately, independent of retention.
type AlertLog struct {
	mu       sync.RWMutex
	alerts   []entities.Alert
	capacity int
	operator io.Writer
	log      *zap.Logger
}

// NewAlertLog creates an alert log retaining at most capacity alerts.
// A capacity of zero or less falls back to DefaultAlertCapacity.
func NewAlertLog(capacity int, operator io.Writer, log *zap.Logger) *AlertLog {
	if capacity <= 0 {
		capacity = DefaultAlertCapacity
	}
	return &AlertLog{
		alerts:   make([]entities.Alert, 0, capacity),
		capacity: capacity,
		operator: operator,
		log:      log,
	}
}

// Verify interface compliance
var _ repositories.AlertLog = (*AlertLog)(nil)

// Record stores the alert, evicting the oldest when the log is full
func (l *AlertLog) Record(message string) {
	l.mu.Lock()
	l.alerts = append(l.alerts, entities.NewAlert(message))
	if len(l.alerts) > l.capacity {
		l.alerts = l.alerts[len(l.alerts)-l.capacity:]
	}
	l.mu.Unlock()

	fmt.Fprintf(l.operator, "[ALERT] %s\n", message)
	l.log.Warn("alert recorded", zap.String("message", message))
}

// List returns the retained alerts oldest-first
func (l *AlertLog) List() []entities.Alert {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]entities.Alert, len(l.alerts))
	copy(out, l.alerts)
	return out
}
