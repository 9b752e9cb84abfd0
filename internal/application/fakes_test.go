package application

import (
	"context"
	"sort"
	"time"

	"attendo/internal/domain"
	"attendo/internal/domain/entities"
	"attendo/internal/infrastructure/cache"
)

// In-memory fakes for the output ports. Call counters let tests distinguish
// cache hits from repository reads.

type fakeParticipantRepo struct {
	nextID        uint
	participants  map[uint]entities.Participant
	findAllCalls  int
	findByIDCalls int
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{participants: map[uint]entities.Participant{}}
}

func (f *fakeParticipantRepo) Create(_ context.Context, p *entities.Participant) error {
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.participants[p.ID] = *p
	return nil
}

func (f *fakeParticipantRepo) FindByID(_ context.Context, id uint) (*entities.Participant, error) {
	f.findByIDCalls++
	p, ok := f.participants[id]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	cp := p
	return &cp, nil
}

func (f *fakeParticipantRepo) FindByEmail(_ context.Context, email string) (*entities.Participant, error) {
	for _, p := range f.participants {
		if p.Email == email {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrParticipantNotFound
}

func (f *fakeParticipantRepo) FindAll(_ context.Context) ([]entities.Participant, error) {
	f.findAllCalls++
	out := make([]entities.Participant, 0, len(f.participants))
	for _, p := range f.participants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeParticipantRepo) Update(_ context.Context, p *entities.Participant) (int64, error) {
	if _, ok := f.participants[p.ID]; !ok {
		return 0, nil
	}
	p.UpdatedAt = time.Now()
	f.participants[p.ID] = *p
	return 1, nil
}

func (f *fakeParticipantRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := f.participants[id]; !ok {
		return 0, nil
	}
	delete(f.participants, id)
	return 1, nil
}

type fakeEventRepo struct {
	nextID        uint
	events        map[uint]entities.Event
	findAllCalls  int
	findByIDCalls int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uint]entities.Event{}}
}

func (f *fakeEventRepo) Create(_ context.Context, e *entities.Event) error {
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.events[e.ID] = *e
	return nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id uint) (*entities.Event, error) {
	f.findByIDCalls++
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	ce := e
	return &ce, nil
}

func (f *fakeEventRepo) FindAll(_ context.Context) ([]entities.Event, error) {
	f.findAllCalls++
	out := make([]entities.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEventRepo) Update(_ context.Context, e *entities.Event) (int64, error) {
	if _, ok := f.events[e.ID]; !ok {
		return 0, nil
	}
	e.UpdatedAt = time.Now()
	f.events[e.ID] = *e
	return 1, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := f.events[id]; !ok {
		return 0, nil
	}
	delete(f.events, id)
	return 1, nil
}

type fakeAttendanceRepo struct {
	participants *fakeParticipantRepo
	events       *fakeEventRepo
	nextID       uint
	rows         map[uint]entities.Attendance
	listCalls    int
	statsCalls   int
}

func newFakeAttendanceRepo(participants *fakeParticipantRepo, events *fakeEventRepo) *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		participants: participants,
		events:       events,
		rows:         map[uint]entities.Attendance{},
	}
}

func (f *fakeAttendanceRepo) Register(_ context.Context, participantID, eventID uint) (*entities.Attendance, error) {
	event, ok := f.events.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	for _, a := range f.rows {
		if a.ParticipantID == participantID && a.EventID == eventID {
			return nil, domain.ErrAlreadyRegistered
		}
	}
	if event.HasCapacity() {
		var count int64
		for _, a := range f.rows {
			if a.EventID == eventID {
				count++
			}
		}
		if count >= int64(*event.Capacity) {
			return nil, domain.ErrEventFull
		}
	}
	f.nextID++
	a := entities.Attendance{
		ID:            f.nextID,
		ParticipantID: participantID,
		EventID:       eventID,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	f.rows[a.ID] = a
	return &a, nil
}

func (f *fakeAttendanceRepo) FindByParticipantAndEvent(_ context.Context, participantID, eventID uint) (*entities.Attendance, error) {
	for _, a := range f.rows {
		if a.ParticipantID == participantID && a.EventID == eventID {
			ca := a
			return &ca, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) CountByEventID(_ context.Context, eventID uint) (int64, error) {
	var count int64
	for _, a := range f.rows {
		if a.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) FindByParticipantID(_ context.Context, participantID uint) ([]entities.Attendance, error) {
	out := []entities.Attendance{}
	for _, a := range f.rows {
		if a.ParticipantID == participantID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAttendanceRepo) FindAllDetailed(_ context.Context) ([]entities.AttendanceDetail, error) {
	f.listCalls++
	out := []entities.AttendanceDetail{}
	for _, a := range f.rows {
		p := f.participants.participants[a.ParticipantID]
		e := f.events.events[a.EventID]
		out = append(out, entities.AttendanceDetail{
			Attendance:  a,
			Participant: entities.ParticipantSummary{ID: p.ID, Name: p.Name, Email: p.Email},
			Event:       entities.EventSummary{ID: e.ID, Title: e.Title, Date: e.Date},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAttendanceRepo) StatsByEvent(_ context.Context) ([]entities.EventStats, error) {
	f.statsCalls++
	counts := map[uint]int64{}
	for _, a := range f.rows {
		counts[a.EventID]++
	}
	ids := make([]uint, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := []entities.EventStats{}
	for _, id := range ids {
		e := f.events.events[id]
		out = append(out, entities.EventStats{
			EventID:           id,
			EventTitle:        e.Title,
			Capacity:          e.Capacity,
			TotalParticipants: counts[id],
		})
	}
	return out, nil
}

// fixture wires the three services around shared fakes and a real cache store.
type fixture struct {
	participantRepo *fakeParticipantRepo
	eventRepo       *fakeEventRepo
	attendanceRepo  *fakeAttendanceRepo
	store           *cache.Store
	participants    *ParticipantService
	events          *EventService
	attendances     *AttendanceService
}

func newFixture() *fixture {
	participantRepo := newFakeParticipantRepo()
	eventRepo := newFakeEventRepo()
	attendanceRepo := newFakeAttendanceRepo(participantRepo, eventRepo)
	store := cache.NewStore()
	ttl := DefaultCacheTTL()
	return &fixture{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		attendanceRepo:  attendanceRepo,
		store:           store,
		participants:    NewParticipantService(participantRepo, store, ttl),
		events:          NewEventService(eventRepo, store, ttl),
		attendances:     NewAttendanceService(participantRepo, eventRepo, attendanceRepo, store, ttl),
	}
}

func (f *fixture) mustCreateParticipant(ctx context.Context, name, email string) *entities.Participant {
	p := &entities.Participant{Name: name, Email: email, Password: "secret123"}
	if err := f.participants.CreateParticipant(ctx, p); err != nil {
		panic(err)
	}
	return p
}

func (f *fixture) mustCreateEvent(ctx context.Context, title string, capacity *int) *entities.Event {
	e := &entities.Event{
		Title:    title,
		Date:     time.Date(2025, 12, 1, 18, 0, 0, 0, time.UTC),
		Capacity: capacity,
	}
	if err := f.events.CreateEvent(ctx, e); err != nil {
		panic(err)
	}
	return e
}

func intPtr(v int) *int {
	return &v
}
