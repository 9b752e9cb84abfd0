package output

import (
	"context"

	"attendo/internal/domain/entities"
)

type EventRepository interface {
	// Create inserts the event and fills ID and timestamps.
	Create(ctx context.Context, event *entities.Event) error
	// FindByID returns domain.ErrEventNotFound when the id does not exist.
	FindByID(ctx context.Context, id uint) (*entities.Event, error)
	FindAll(ctx context.Context) ([]entities.Event, error)
	// Update rewrites the mutable fields and returns the number of rows
	// affected (0 when the id does not exist).
	Update(ctx context.Context, event *entities.Event) (int64, error)
	// Delete removes the event and, by cascade, its attendances.
	// Deleting an unknown id returns (0, nil).
	Delete(ctx context.Context, id uint) (int64, error)
}
