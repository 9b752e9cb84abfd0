package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"attendo/internal/domain"
	"attendo/internal/domain/entities"
	"attendo/internal/ports/input"
	"attendo/internal/ports/output"
)

var _ input.ParticipantUseCase = (*ParticipantService)(nil)

type ParticipantService struct {
	participantRepo output.ParticipantRepository
	store           output.CacheStore
	ttl             CacheTTL
}

func NewParticipantService(
	participantRepo output.ParticipantRepository,
	store output.CacheStore,
	ttl CacheTTL,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		store:           store,
		ttl:             ttl,
	}
}

func (s *ParticipantService) CreateParticipant(ctx context.Context, participant *entities.Participant) error {
	if strings.TrimSpace(participant.Name) == "" || strings.TrimSpace(participant.Email) == "" {
		return domain.ErrNameEmailRequired
	}
	if participant.Password == "" {
		return domain.ErrPasswordRequired
	}
	existing, err := s.participantRepo.FindByEmail(ctx, participant.Email)
	if err != nil && !errors.Is(err, domain.ErrParticipantNotFound) {
		return fmt.Errorf("find participant by email: %w", err)
	}
	if existing != nil {
		return domain.ErrEmailTaken
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	// No per-id entry exists yet; only the listing goes stale.
	s.store.Delete(keyParticipantsAll)
	return nil
}

func (s *ParticipantService) ListParticipants(ctx context.Context) ([]entities.Participant, error) {
	if v, ok := s.store.Get(keyParticipantsAll); ok {
		if participants, ok := v.([]entities.Participant); ok {
			return participants, nil
		}
	}
	participants, err := s.participantRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	s.store.Put(keyParticipantsAll, participants, s.ttl.List)
	return participants, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id uint) (*entities.Participant, error) {
	key := participantKey(id)
	if v, ok := s.store.Get(key); ok {
		if participant, ok := v.(*entities.Participant); ok {
			return participant, nil
		}
	}
	participant, err := s.participantRepo.FindByID(ctx, id)
	if err != nil {
		// Not-found results are never cached.
		return nil, err
	}
	s.store.Put(key, participant, s.ttl.Entity)
	return participant, nil
}

func (s *ParticipantService) UpdateParticipant(ctx context.Context, id uint, upd entities.ParticipantUpdate) error {
	participant, err := s.participantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if upd.Name != nil {
		participant.Name = *upd.Name
	}
	if upd.Email != nil {
		participant.Email = *upd.Email
	}
	if upd.Phone != nil {
		participant.Phone = *upd.Phone
	}
	if upd.Password != nil {
		participant.Password = *upd.Password
	}
	if strings.TrimSpace(participant.Name) == "" || strings.TrimSpace(participant.Email) == "" {
		return domain.ErrNameEmailRequired
	}
	affected, err := s.participantRepo.Update(ctx, participant)
	if err != nil {
		return fmt.Errorf("update participant: %w", err)
	}
	if affected == 0 {
		return domain.ErrParticipantNotFound
	}
	s.store.Delete(keyParticipantsAll)
	s.store.Delete(participantKey(id))
	return nil
}

func (s *ParticipantService) DeleteParticipant(ctx context.Context, id uint) (int64, error) {
	affected, err := s.participantRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete participant: %w", err)
	}
	s.store.Delete(keyParticipantsAll)
	s.store.Delete(participantKey(id))
	// Attendances removed by cascade age out of the attendance views via
	// their TTLs.
	return affected, nil
}
