package input

import (
	"context"

	"attendo/internal/domain/entities"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, event *entities.Event) error
	ListEvents(ctx context.Context) ([]entities.Event, error)
	GetEvent(ctx context.Context, id uint) (*entities.Event, error)
	UpdateEvent(ctx context.Context, id uint, upd entities.EventUpdate) error
	DeleteEvent(ctx context.Context, id uint) (int64, error)
}
