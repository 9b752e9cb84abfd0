package entities

import "time"

// Attendance links one participant to one event. Rows are created only by
// the registration workflow and removed only by cascade when the participant
// or the event is deleted.
type Attendance struct {
	ID            uint
	ParticipantID uint
	EventID       uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ParticipantSummary is the slice of participant data exposed on attendance
// listings.
type ParticipantSummary struct {
	ID    uint
	Name  string
	Email string
}

// EventSummary is the slice of event data exposed on attendance listings.
type EventSummary struct {
	ID    uint
	Title string
	Date  time.Time
}

// AttendanceDetail is the read model for listing attendances: each row joined
// with its participant and event. The shape is fixed here so callers never
// assemble the join themselves.
type AttendanceDetail struct {
	Attendance
	Participant ParticipantSummary
	Event       EventSummary
}

// EventStats is one row of the per-event attendance aggregate.
type EventStats struct {
	EventID           uint
	EventTitle        string
	Capacity          *int // nil = unlimited
	TotalParticipants int64
}
