package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"attendo/internal/domain"
	"attendo/internal/domain/entities"
	"attendo/internal/ports/output"
)

var _ output.AttendanceRepository = (*AttendanceRepository)(nil)

// AttendanceRepository implements output.AttendanceRepository using pgx.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates an AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

func scanAttendance(row pgx.Row) (*entities.Attendance, error) {
	var (
		a                          entities.Attendance
		id, participantID, eventID int64
		createdAt, updatedAt       pgtype.Timestamptz
	)
	if err := row.Scan(&id, &participantID, &eventID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	a.ID = uint(id)
	a.ParticipantID = uint(participantID)
	a.EventID = uint(eventID)
	a.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	a.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &a, nil
}

func collectAttendances(rows pgx.Rows) ([]entities.Attendance, error) {
	attendances := []entities.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		attendances = append(attendances, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("collect attendances: %w", err)
	}
	return attendances, nil
}

// Register inserts the attendance inside a transaction that locks the event
// row and re-counts against its capacity, so two concurrent registrations
// serialize on the event. The UNIQUE (participant_id, event_id) constraint
// is the arbiter of the duplicate invariant.
func (r *AttendanceRepository) Register(ctx context.Context, participantID, eventID uint) (*entities.Attendance, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin registration: %w", err)
	}
	defer tx.Rollback(ctx)

	var capacity pgtype.Int4
	err = tx.QueryRow(ctx,
		`SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, int64(eventID),
	).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	if capacity.Valid {
		var count int64
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM attendances WHERE event_id = $1`, int64(eventID),
		).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("count attendances: %w", err)
		}
		if count >= int64(capacity.Int32) {
			return nil, domain.ErrEventFull
		}
	}

	var (
		id                   int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	err = tx.QueryRow(ctx,
		`INSERT INTO attendances (participant_id, event_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		int64(participantID), int64(eventID),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err, "attendances_participant_id_event_id_key"):
			return nil, domain.ErrAlreadyRegistered
		case isForeignKeyViolation(err, "attendances_participant_id_fkey"):
			return nil, domain.ErrParticipantNotFound
		case isForeignKeyViolation(err, "attendances_event_id_fkey"):
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("insert attendance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit registration: %w", err)
	}

	return &entities.Attendance{
		ID:            uint(id),
		ParticipantID: participantID,
		EventID:       eventID,
		CreatedAt:     pgtypeTimestamptzToTime(createdAt),
		UpdatedAt:     pgtypeTimestamptzToTime(updatedAt),
	}, nil
}

func (r *AttendanceRepository) FindByParticipantAndEvent(ctx context.Context, participantID, eventID uint) (*entities.Attendance, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, participant_id, event_id, created_at, updated_at
		 FROM attendances WHERE participant_id = $1 AND event_id = $2`,
		int64(participantID), int64(eventID))
	a, err := scanAttendance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance by pair: %w", err)
	}
	return a, nil
}

func (r *AttendanceRepository) CountByEventID(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE event_id = $1`, int64(eventID),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count attendances: %w", err)
	}
	return count, nil
}

func (r *AttendanceRepository) FindByParticipantID(ctx context.Context, participantID uint) ([]entities.Attendance, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, participant_id, event_id, created_at, updated_at
		 FROM attendances WHERE participant_id = $1 ORDER BY id`,
		int64(participantID))
	if err != nil {
		return nil, fmt.Errorf("get attendances by participant: %w", err)
	}
	defer rows.Close()
	return collectAttendances(rows)
}

func (r *AttendanceRepository) FindAllDetailed(ctx context.Context) ([]entities.AttendanceDetail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.participant_id, a.event_id, a.created_at, a.updated_at,
		        p.name, p.email, e.title, e.date
		 FROM attendances a
		 JOIN participants p ON p.id = a.participant_id
		 JOIN events e ON e.id = a.event_id
		 ORDER BY a.id`)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	defer rows.Close()

	details := []entities.AttendanceDetail{}
	for rows.Next() {
		var (
			d                          entities.AttendanceDetail
			id, participantID, eventID int64
			createdAt, updatedAt       pgtype.Timestamptz
			eventDate                  pgtype.Timestamptz
		)
		err := rows.Scan(&id, &participantID, &eventID, &createdAt, &updatedAt,
			&d.Participant.Name, &d.Participant.Email, &d.Event.Title, &eventDate)
		if err != nil {
			return nil, fmt.Errorf("scan attendance detail: %w", err)
		}
		d.ID = uint(id)
		d.ParticipantID = uint(participantID)
		d.EventID = uint(eventID)
		d.CreatedAt = pgtypeTimestamptzToTime(createdAt)
		d.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
		d.Participant.ID = uint(participantID)
		d.Event.ID = uint(eventID)
		d.Event.Date = pgtypeTimestamptzToTime(eventDate)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	return details, nil
}

func (r *AttendanceRepository) StatsByEvent(ctx context.Context) ([]entities.EventStats, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.id, e.title, e.capacity, COUNT(a.id) AS total_participants
		 FROM attendances a
		 JOIN events e ON e.id = a.event_id
		 GROUP BY e.id, e.title, e.capacity
		 ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("aggregate statistics: %w", err)
	}
	defer rows.Close()

	stats := []entities.EventStats{}
	for rows.Next() {
		var (
			s        entities.EventStats
			eventID  int64
			capacity pgtype.Int4
		)
		if err := rows.Scan(&eventID, &s.EventTitle, &capacity, &s.TotalParticipants); err != nil {
			return nil, fmt.Errorf("scan statistics: %w", err)
		}
		s.EventID = uint(eventID)
		s.Capacity = int4ToCapacity(capacity)
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate statistics: %w", err)
	}
	return stats, nil
}
