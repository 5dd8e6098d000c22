package meeting

import (
	"context"

	"tutorsched/models"

	"go.uber.org/zap"
)

// Reminder failures never fail the request that triggered them.

func (s *DefaultMeetingService) scheduleReminder(ctx context.Context, m models.Meeting) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.Schedule(ctx, m); err != nil {
		s.logger().Warn("failed to schedule reminder", zap.String("meetingID", m.ID), zap.Error(err))
	}
}

func (s *DefaultMeetingService) cancelReminder(ctx context.Context, meetingID string) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.Cancel(ctx, meetingID); err != nil {
		s.logger().Warn("failed to cancel reminder", zap.String("meetingID", meetingID), zap.Error(err))
	}
}
