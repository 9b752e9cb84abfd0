package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendo/internal/domain"
	"attendo/internal/domain/entities"
)

func TestCreateEventValidation(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 12, 1, 18, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		event   entities.Event
		wantErr error
	}{
		{
			name:    "missing title",
			event:   entities.Event{Date: date},
			wantErr: domain.ErrTitleRequired,
		},
		{
			name:    "missing date",
			event:   entities.Event{Title: "Charla"},
			wantErr: domain.ErrDateRequired,
		},
		{
			name:    "zero capacity",
			event:   entities.Event{Title: "Charla", Date: date, Capacity: intPtr(0)},
			wantErr: domain.ErrInvalidCapacity,
		},
		{
			name:    "negative capacity",
			event:   entities.Event{Title: "Charla", Date: date, Capacity: intPtr(-5)},
			wantErr: domain.ErrInvalidCapacity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			e := tt.event
			err := f.events.CreateEvent(ctx, &e)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateEventWithoutCapacityIsUnlimited(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	e := f.mustCreateEvent(ctx, "Maratón", nil)
	assert.False(t, e.HasCapacity())
}

func TestListEventsServesFromCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created := f.mustCreateEvent(ctx, "Charla", intPtr(100))

	first, err := f.events.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	delete(f.eventRepo.events, created.ID)

	second, err := f.events.ListEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.eventRepo.findAllCalls)
}

func TestCreateEventInvalidatesListing(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	empty, err := f.events.ListEvents(ctx)
	require.NoError(t, err)
	require.Empty(t, empty)

	f.mustCreateEvent(ctx, "Nuevo Evento", intPtr(50))

	after, err := f.events.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "Nuevo Evento", after[0].Title)
}

func TestGetEventServesFromCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created := f.mustCreateEvent(ctx, "Charla", intPtr(100))

	got, err := f.events.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Charla", got.Title)

	stored := f.eventRepo.events[created.ID]
	stored.Title = "Retitulada"
	f.eventRepo.events[created.ID] = stored

	again, err := f.events.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Charla", again.Title)
}

func TestGetEventDoesNotCacheNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.events.GetEvent(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	f.eventRepo.events[7] = entities.Event{ID: 7, Title: "Tardío", Date: time.Now()}

	got, err := f.events.GetEvent(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Tardío", got.Title)
}

func TestUpdateEventInvalidatesCaches(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created := f.mustCreateEvent(ctx, "Charla", intPtr(100))

	_, err := f.events.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	_, err = f.events.ListEvents(ctx)
	require.NoError(t, err)

	title := "Charla Extendida"
	err = f.events.UpdateEvent(ctx, created.ID, entities.EventUpdate{Title: &title})
	require.NoError(t, err)

	got, err := f.events.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Charla Extendida", got.Title)

	list, err := f.events.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Charla Extendida", list[0].Title)
}

func TestUpdateEventRejectsInvalidCapacity(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created := f.mustCreateEvent(ctx, "Charla", intPtr(100))

	err := f.events.UpdateEvent(ctx, created.ID, entities.EventUpdate{Capacity: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidCapacity)
}

func TestUpdateEventNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	title := "Nada"
	err := f.events.UpdateEvent(ctx, 42, entities.EventUpdate{Title: &title})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestDeleteEventIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	affected, err := f.events.DeleteEvent(ctx, 42)
	require.NoError(t, err, "deleting an unknown id is a zero-affected result, not an error")
	assert.Zero(t, affected)
}

func TestDeleteEventInvalidatesListing(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created := f.mustCreateEvent(ctx, "Charla", intPtr(100))

	list, err := f.events.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	affected, err := f.events.DeleteEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	list, err = f.events.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
