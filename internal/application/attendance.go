package application

import (
	"context"
	"fmt"

	"attendo/internal/domain"
	"attendo/internal/domain/entities"
	"attendo/internal/ports/input"
	"attendo/internal/ports/output"
)

var _ input.AttendanceUseCase = (*AttendanceService)(nil)

// AttendanceService owns the registration workflow and the attendance read
// models (listing and per-event statistics).
type AttendanceService struct {
	participantRepo output.ParticipantRepository
	eventRepo       output.EventRepository
	attendanceRepo  output.AttendanceRepository
	store           output.CacheStore
	ttl             CacheTTL
}

func NewAttendanceService(
	participantRepo output.ParticipantRepository,
	eventRepo output.EventRepository,
	attendanceRepo output.AttendanceRepository,
	store output.CacheStore,
	ttl CacheTTL,
) *AttendanceService {
	return &AttendanceService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		attendanceRepo:  attendanceRepo,
		store:           store,
		ttl:             ttl,
	}
}

// RegisterAttendance registers a participant for an event. Every check reads
// the repositories, never the cache: invariant checks must observe current
// state. Checks are ordered so the reported error is the most specific one:
// existence before duplicate, duplicate before capacity.
func (s *AttendanceService) RegisterAttendance(ctx context.Context, participantID, eventID uint) (*entities.Attendance, error) {
	if _, err := s.participantRepo.FindByID(ctx, participantID); err != nil {
		return nil, err
	}
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	existing, err := s.attendanceRepo.FindByParticipantAndEvent(ctx, participantID, eventID)
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyRegistered
	}

	if event.HasCapacity() {
		count, err := s.attendanceRepo.CountByEventID(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("count attendances: %w", err)
		}
		if count >= int64(*event.Capacity) {
			return nil, domain.ErrEventFull
		}
	}

	// Register re-verifies both invariants atomically inside the store; the
	// ordered checks above only make the reported error specific.
	attendance, err := s.attendanceRepo.Register(ctx, participantID, eventID)
	if err != nil {
		return nil, err
	}

	s.store.Delete(keyStats)
	s.store.Delete(keyAttendancesAll)
	return attendance, nil
}

func (s *AttendanceService) ListAttendances(ctx context.Context) ([]entities.AttendanceDetail, error) {
	if v, ok := s.store.Get(keyAttendancesAll); ok {
		if attendances, ok := v.([]entities.AttendanceDetail); ok {
			return attendances, nil
		}
	}
	attendances, err := s.attendanceRepo.FindAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	s.store.Put(keyAttendancesAll, attendances, s.ttl.List)
	return attendances, nil
}

func (s *AttendanceService) GetStatistics(ctx context.Context) ([]entities.EventStats, error) {
	if v, ok := s.store.Get(keyStats); ok {
		if stats, ok := v.([]entities.EventStats); ok {
			return stats, nil
		}
	}
	stats, err := s.attendanceRepo.StatsByEvent(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate statistics: %w", err)
	}
	s.store.Put(keyStats, stats, s.ttl.Stats)
	return stats, nil
}
