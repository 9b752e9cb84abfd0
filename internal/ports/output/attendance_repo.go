package output

import (
	"context"

	"attendo/internal/domain/entities"
)

type AttendanceRepository interface {
	// Register atomically inserts an attendance for (participantID, eventID).
	// The store is the arbiter of the uniqueness and capacity invariants:
	// the insert runs under a lock on the event row with a capacity re-count,
	// and the (participant, event) pair is covered by a unique constraint.
	// Returns domain.ErrAlreadyRegistered, domain.ErrEventFull or
	// domain.ErrEventNotFound accordingly.
	Register(ctx context.Context, participantID, eventID uint) (*entities.Attendance, error)
	// FindByParticipantAndEvent returns the row for the exact pair, or
	// (nil, nil) when no such row exists.
	FindByParticipantAndEvent(ctx context.Context, participantID, eventID uint) (*entities.Attendance, error)
	// CountByEventID counts attendance rows referencing the event.
	CountByEventID(ctx context.Context, eventID uint) (int64, error)
	// FindByParticipantID lists the attendances of one participant.
	FindByParticipantID(ctx context.Context, participantID uint) ([]entities.Attendance, error)
	// FindAllDetailed lists every attendance joined with participant and event.
	FindAllDetailed(ctx context.Context) ([]entities.AttendanceDetail, error)
	// StatsByEvent aggregates attendance counts per event.
	StatsByEvent(ctx context.Context) ([]entities.EventStats, error)
}
