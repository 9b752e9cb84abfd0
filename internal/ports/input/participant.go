package input

import (
	"context"

	"attendo/internal/domain/entities"
)

type ParticipantUseCase interface {
	CreateParticipant(ctx context.Context, participant *entities.Participant) error
	ListParticipants(ctx context.Context) ([]entities.Participant, error)
	GetParticipant(ctx context.Context, id uint) (*entities.Participant, error)
	UpdateParticipant(ctx context.Context, id uint, upd entities.ParticipantUpdate) error
	DeleteParticipant(ctx context.Context, id uint) (int64, error)
}
