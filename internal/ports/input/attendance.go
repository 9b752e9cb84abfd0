package input

import (
	"context"

	"attendo/internal/domain/entities"
)

type AttendanceUseCase interface {
	// RegisterAttendance registers a participant for an event, enforcing the
	// duplicate and capacity invariants.
	RegisterAttendance(ctx context.Context, participantID, eventID uint) (*entities.Attendance, error)
	ListAttendances(ctx context.Context) ([]entities.AttendanceDetail, error)
	GetStatistics(ctx context.Context) ([]entities.EventStats, error)
}
