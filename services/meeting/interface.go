package meeting

import (
	"context"
	"time"

	meetingRepo "tutorsched/database/repository/meeting"
	"tutorsched/models"

	"go.uber.org/zap"
)

// MeetingService is the scheduling core used by the HTTP handlers. Every operation is
// scoped to the authenticated tutor.
type MeetingService interface {
	CreateMeeting(ctx context.Context, tutorID string, req models.MeetingRequest) ([]models.Meeting, error)
	ListMeetings(ctx context.Context, tutorID string) ([]models.Meeting, error)
	ListUpcoming(ctx context.Context, tutorID string) ([]models.Meeting, error)
	ListPast(ctx context.Context, tutorID string) ([]models.Meeting, error)
	UpdateMeeting(ctx context.Context, tutorID, meetingID string, patch models.MeetingPatch) (*models.Meeting, error)
	DeleteMeeting(ctx context.Context, tutorID, meetingID string) error
	DeleteSeries(ctx context.Context, tutorID, recurringID string) (*models.SeriesDeleteResult, error)
	ExportCalendar(ctx context.Context, tutorID string) (string, error)
}

// TutorLocker gives mutual exclusion over one tutor's schedule.
type TutorLocker interface {
	Lock(ctx context.Context, tutorID string) (release func(), err error)
}

// ReminderScheduler queues and cancels meeting reminders.
type ReminderScheduler interface {
	Schedule(ctx context.Context, m models.Meeting) error
	Cancel(ctx context.Context, meetingID string) error
}

// DefaultMeetingService implements MeetingService.
type DefaultMeetingService struct {
	Repo      meetingRepo.MeetingRepository
	Locker    TutorLocker
	Reminders ReminderScheduler // optional
	Logger    *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time
	// ObservationZone is where "now" is read for upcoming/past; defaults to UTC.
	ObservationZone *time.Location
	MaxRecurrence   int
}

func (s *DefaultMeetingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultMeetingService) observationNow() time.Time {
	loc := s.ObservationZone
	if loc == nil {
		loc = time.UTC
	}
	return s.now().In(loc)
}

func (s *DefaultMeetingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
