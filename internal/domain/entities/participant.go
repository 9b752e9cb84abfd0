package entities

import "time"

// Participant represents a registered person who can attend events.
type Participant struct {
	ID          uint
	Name        string
	Email       string
	Phone       string
	Password    string
	Attendances []Attendance
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ParticipantUpdate carries the fields of a partial participant update.
// Nil means "leave unchanged".
type ParticipantUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}
