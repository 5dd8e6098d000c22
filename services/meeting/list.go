package meeting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tutorsched/models"

	"go.uber.org/zap"
)

func (s *DefaultMeetingService) ListMeetings(ctx context.Context, tutorID string) ([]models.Meeting, error) {
	meetings, err := s.Repo.GetByTutor(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	if meetings == nil {
		meetings = []models.Meeting{}
	}
	return meetings, nil
}

// ListUpcoming returns meetings that have not ended yet, soonest first.
func (s *DefaultMeetingService) ListUpcoming(ctx context.Context, tutorID string) ([]models.Meeting, error) {
	upcoming, _, err := s.partition(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	sortByStart(upcoming, false)
	return meetingsOf(upcoming), nil
}

// ListPast returns meetings that have ended, most recent first.
func (s *DefaultMeetingService) ListPast(ctx context.Context, tutorID string) ([]models.Meeting, error) {
	_, past, err := s.partition(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	sortByStart(past, true)
	return meetingsOf(past), nil
}

type timedMeeting struct {
	meeting models.Meeting
	start   time.Time
}

// partition splits the tutor's meetings on whether their end is at or after now. A meeting
// ending exactly now still counts as upcoming.
func (s *DefaultMeetingService) partition(ctx context.Context, tutorID string) (upcoming, past []timedMeeting, err error) {
	meetings, err := s.Repo.GetByTutor(ctx, tutorID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	now := s.observationNow()
	for _, m := range meetings {
		start, end, perr := storedInterval(m)
		if perr != nil {
			s.logger().Warn("skipping meeting with unreadable times", zap.String("meetingID", m.ID), zap.Error(perr))
			continue
		}
		tm := timedMeeting{meeting: m, start: start}
		if end.Before(now) {
			past = append(past, tm)
		} else {
			upcoming = append(upcoming, tm)
		}
	}
	return upcoming, past, nil
}

func sortByStart(ms []timedMeeting, desc bool) {
	sort.SliceStable(ms, func(i, j int) bool {
		if desc {
			return ms[i].start.After(ms[j].start)
		}
		return ms[i].start.Before(ms[j].start)
	})
}

func meetingsOf(ms []timedMeeting) []models.Meeting {
	out := make([]models.Meeting, 0, len(ms))
	for _, tm := range ms {
		out = append(out, tm.meeting)
	}
	return out
}
