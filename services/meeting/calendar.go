package meeting

import (
	"context"
	"fmt"
	"strings"

	"tutorsched/models"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

const calendarProductID = "-//tutorsched//meetings//EN"

// ExportCalendar renders the tutor's meetings as an iCalendar feed.
func (s *DefaultMeetingService) ExportCalendar(ctx context.Context, tutorID string) (string, error) {
	meetings, err := s.Repo.GetByTutor(ctx, tutorID)
	if err != nil {
		return "", fmt.Errorf("failed to list meetings: %w", err)
	}
	return s.renderCalendar(meetings), nil
}

func (s *DefaultMeetingService) renderCalendar(meetings []models.Meeting) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	stamp := s.now().UTC()
	for _, m := range meetings {
		start, end, err := storedInterval(m)
		if err != nil {
			s.logger().Warn("skipping meeting in calendar export", zap.String("meetingID", m.ID), zap.Error(err))
			continue
		}
		event := cal.AddEvent(m.ID)
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(eventSummary(m))
		if m.Notes != "" {
			event.SetDescription(m.Notes)
		}
		if m.Link != "" {
			event.SetURL(m.Link)
		}
		if m.RecurringID != "" {
			event.AddProperty(ics.ComponentPropertyRelatedTo, m.RecurringID)
		}
	}
	return cal.Serialize()
}

func eventSummary(m models.Meeting) string {
	title := m.Name
	if title == "" {
		title = m.Type
	}
	if m.StudentName == "" {
		return title
	}
	return strings.TrimSpace(title + " with " + m.StudentName)
}
