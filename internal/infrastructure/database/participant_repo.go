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

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository using pgx.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

const participantColumns = `id, name, email, phone, password, created_at, updated_at`

func scanParticipant(row pgx.Row) (*entities.Participant, error) {
	var (
		p                    entities.Participant
		id                   int64
		phone                pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &p.Name, &p.Email, &phone, &p.Password, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.ID = uint(id)
	p.Phone = textToString(phone)
	p.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	p.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &p, nil
}

func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	var (
		id                   int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx,
		`INSERT INTO participants (name, email, phone, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		participant.Name, participant.Email, stringToText(participant.Phone), participant.Password,
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err, "participants_email_key") {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("create participant: %w", err)
	}
	participant.ID = uint(id)
	participant.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	participant.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (*entities.Participant, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE id = $1`, int64(id))
	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get participant by id: %w", err)
	}
	if err := r.attachAttendances(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ParticipantRepository) FindByEmail(ctx context.Context, email string) (*entities.Participant, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE email = $1`, email)
	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("get participant by email: %w", err)
	}
	return p, nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context) ([]entities.Participant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+participantColumns+` FROM participants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	participants := []entities.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		participants = append(participants, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	byParticipant, err := r.attendancesByParticipant(ctx)
	if err != nil {
		return nil, err
	}
	for i := range participants {
		participants[i].Attendances = byParticipant[participants[i].ID]
	}
	return participants, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, participant *entities.Participant) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE participants
		 SET name = $2, email = $3, phone = $4, password = $5, updated_at = now()
		 WHERE id = $1`,
		int64(participant.ID), participant.Name, participant.Email,
		stringToText(participant.Phone), participant.Password,
	)
	if err != nil {
		if isUniqueViolation(err, "participants_email_key") {
			return 0, domain.ErrEmailTaken
		}
		return 0, fmt.Errorf("update participant: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id uint) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM participants WHERE id = $1`, int64(id))
	if err != nil {
		return 0, fmt.Errorf("delete participant: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ParticipantRepository) attachAttendances(ctx context.Context, participant *entities.Participant) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, participant_id, event_id, created_at, updated_at
		 FROM attendances WHERE participant_id = $1 ORDER BY id`,
		int64(participant.ID))
	if err != nil {
		return fmt.Errorf("get attendances by participant: %w", err)
	}
	defer rows.Close()

	attendances, err := collectAttendances(rows)
	if err != nil {
		return err
	}
	participant.Attendances = attendances
	return nil
}

func (r *ParticipantRepository) attendancesByParticipant(ctx context.Context) (map[uint][]entities.Attendance, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, participant_id, event_id, created_at, updated_at
		 FROM attendances ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	defer rows.Close()

	attendances, err := collectAttendances(rows)
	if err != nil {
		return nil, err
	}
	byParticipant := make(map[uint][]entities.Attendance)
	for _, a := range attendances {
		byParticipant[a.ParticipantID] = append(byParticipant[a.ParticipantID], a)
	}
	return byParticipant, nil
}
