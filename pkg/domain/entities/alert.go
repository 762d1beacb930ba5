package entities

import "time"

// Alert represents a recorded operational alert
type Alert struct {
	Message    string
	RecordedAt time.Time
}

// NewAlert creates an Alert stamped with the current time
func NewAlert(message string) Alert {
	return Alert{Message: message, RecordedAt: time.Now()}
}
