package entities

import "time"

type Event struct {
	ID          uint
	Title       string
	Description string
	Date        time.Time
	Location    string
	Capacity    *int // nil = unlimited
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasCapacity reports whether the event has a finite capacity configured.
func (e *Event) HasCapacity() bool {
	return e.Capacity != nil
}

// EventUpdate carries the fields of a partial event update.
// Nil means "leave unchanged".
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Capacity    *int
}
