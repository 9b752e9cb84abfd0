package application

import (
	"context"
	"fmt"
	"strings"

	"attendo/internal/domain"
	"attendo/internal/domain/entities"
	"attendo/internal/ports/input"
	"attendo/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo output.EventRepository
	store     output.CacheStore
	ttl       CacheTTL
}

func NewEventService(
	eventRepo output.EventRepository,
	store output.CacheStore,
	ttl CacheTTL,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		store:     store,
		ttl:       ttl,
	}
}

func validateEvent(event *entities.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return domain.ErrTitleRequired
	}
	if event.Date.IsZero() {
		return domain.ErrDateRequired
	}
	if event.Capacity != nil && *event.Capacity <= 0 {
		return domain.ErrInvalidCapacity
	}
	return nil
}

func (s *EventService) CreateEvent(ctx context.Context, event *entities.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	s.store.Delete(keyEventsAll)
	return nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	if v, ok := s.store.Get(keyEventsAll); ok {
		if events, ok := v.([]entities.Event); ok {
			return events, nil
		}
	}
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	s.store.Put(keyEventsAll, events, s.ttl.List)
	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (*entities.Event, error) {
	key := eventKey(id)
	if v, ok := s.store.Get(key); ok {
		if event, ok := v.(*entities.Event); ok {
			return event, nil
		}
	}
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		// Not-found results are never cached.
		return nil, err
	}
	s.store.Put(key, event, s.ttl.Entity)
	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint, upd entities.EventUpdate) error {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if upd.Title != nil {
		event.Title = *upd.Title
	}
	if upd.Description != nil {
		event.Description = *upd.Description
	}
	if upd.Date != nil {
		event.Date = *upd.Date
	}
	if upd.Location != nil {
		event.Location = *upd.Location
	}
	if upd.Capacity != nil {
		event.Capacity = upd.Capacity
	}
	if err := validateEvent(event); err != nil {
		return err
	}
	affected, err := s.eventRepo.Update(ctx, event)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}
	s.store.Delete(keyEventsAll)
	s.store.Delete(eventKey(id))
	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) (int64, error) {
	affected, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}
	s.store.Delete(keyEventsAll)
	s.store.Delete(eventKey(id))
	// Attendances removed by cascade age out of the attendance views via
	// their TTLs.
	return affected, nil
}
