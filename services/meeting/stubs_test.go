package meeting

import (
	"context"
	"errors"
	"sync"
	"time"

	meetingRepo "tutorsched/database/repository/meeting"
	"tutorsched/models"

	"github.com/google/uuid"
)

// memRepo is an in-memory MeetingRepository that keeps insertion order.
type memRepo struct {
	mu       sync.Mutex
	meetings []models.Meeting

	createManyErr error
	lastExclude   string
}

func (r *memRepo) Create(ctx context.Context, m *models.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	r.meetings = append(r.meetings, *m)
	return nil
}

func (r *memRepo) CreateMany(ctx context.Context, ms []models.Meeting) error {
	if r.createManyErr != nil {
		return r.createManyErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range ms {
		if ms[i].ID == "" {
			ms[i].ID = uuid.New().String()
		}
	}
	r.meetings = append(r.meetings, ms...)
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.meetings {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, meetingRepo.ErrNotFound
}

func (r *memRepo) filter(keep func(models.Meeting) bool) []models.Meeting {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Meeting
	for _, m := range r.meetings {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func (r *memRepo) GetByTutor(ctx context.Context, tutorID string) ([]models.Meeting, error) {
	return r.filter(func(m models.Meeting) bool { return m.TutorID == tutorID }), nil
}

func (r *memRepo) GetBySeriesID(ctx context.Context, recurringID string) ([]models.Meeting, error) {
	return r.filter(func(m models.Meeting) bool { return m.RecurringID == recurringID }), nil
}

func (r *memRepo) FindCandidates(ctx context.Context, tutorID, startDate, endDate, excludeID string) ([]models.Meeting, error) {
	r.lastExclude = excludeID
	return r.filter(func(m models.Meeting) bool {
		return m.TutorID == tutorID &&
			m.StartDate <= endDate &&
			m.EndDate >= startDate &&
			(excludeID == "" || m.ID != excludeID)
	}), nil
}

func (r *memRepo) Update(ctx context.Context, m *models.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.meetings {
		if r.meetings[i].ID == m.ID {
			r.meetings[i] = *m
			return nil
		}
	}
	return meetingRepo.ErrNotFound
}

func (r *memRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.meetings {
		if r.meetings[i].ID == id {
			r.meetings = append(r.meetings[:i], r.meetings[i+1:]...)
			return nil
		}
	}
	return meetingRepo.ErrNotFound
}

func (r *memRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if err := r.DeleteByID(ctx, id); err == nil {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.meetings)
}

type stubLocker struct {
	mu       sync.Mutex
	acquired []string
	released int
	err      error
}

func (l *stubLocker) Lock(ctx context.Context, tutorID string) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	l.mu.Lock()
	l.acquired = append(l.acquired, tutorID)
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		l.released++
		l.mu.Unlock()
	}, nil
}

type stubReminders struct {
	scheduled []string
	cancelled []string
	err       error
}

func (r *stubReminders) Schedule(ctx context.Context, m models.Meeting) error {
	r.scheduled = append(r.scheduled, m.ID)
	return r.err
}

func (r *stubReminders) Cancel(ctx context.Context, meetingID string) error {
	r.cancelled = append(r.cancelled, meetingID)
	return r.err
}

var errStore = errors.New("store unavailable")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(now time.Time) (*DefaultMeetingService, *memRepo, *stubLocker, *stubReminders) {
	repo := &memRepo{}
	locker := &stubLocker{}
	reminders := &stubReminders{}
	colombo, _ := time.LoadLocation("Asia/Colombo")
	svc := &DefaultMeetingService{
		Repo:            repo,
		Locker:          locker,
		Reminders:       reminders,
		Now:             fixedClock(now),
		ObservationZone: colombo,
		MaxRecurrence:   365,
	}
	return svc, repo, locker, reminders
}

func baseRequest() models.MeetingRequest {
	return models.MeetingRequest{
		Name:             "Algebra",
		Type:             "online",
		StartDate:        "2024-01-01",
		StartTime:        "09:00",
		EndDate:          "2024-01-01",
		EndTime:          "10:00",
		StudentName:      "Nimal",
		StudentID:        "student-1",
		StudentTimezone:  "Asia/Colombo",
		ScheduleTimezone: "UTC",
		Recurring:        models.RecurrenceNone,
	}
}

func strPtr(s string) *string { return &s }
