package output

import (
	"context"

	"attendo/internal/domain/entities"
)

type ParticipantRepository interface {
	// Create inserts the participant and fills ID and timestamps.
	Create(ctx context.Context, participant *entities.Participant) error
	// FindByID returns domain.ErrParticipantNotFound when the id does not exist.
	FindByID(ctx context.Context, id uint) (*entities.Participant, error)
	// FindByEmail returns domain.ErrParticipantNotFound when no participant
	// has the given email.
	FindByEmail(ctx context.Context, email string) (*entities.Participant, error)
	FindAll(ctx context.Context) ([]entities.Participant, error)
	// Update rewrites the mutable fields and returns the number of rows
	// affected (0 when the id does not exist).
	Update(ctx context.Context, participant *entities.Participant) (int64, error)
	// Delete removes the participant and, by cascade, its attendances.
	// Deleting an unknown id returns (0, nil).
	Delete(ctx context.Context, id uint) (int64, error)
}
