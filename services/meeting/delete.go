package meeting

import (
	"context"
	"errors"
	"fmt"

	meetingRepo "tutorsched/database/repository/meeting"
	"tutorsched/models"

	"go.uber.org/zap"
)

func (s *DefaultMeetingService) DeleteMeeting(ctx context.Context, tutorID, meetingID string) error {
	m, err := s.ownedMeeting(ctx, tutorID, meetingID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteByID(ctx, m.ID); err != nil {
		if errors.Is(err, meetingRepo.ErrNotFound) {
			return &NotFoundError{Resource: "Meeting", ID: meetingID}
		}
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	meetingsDeleted.WithLabelValues("single").Inc()
	s.logger().Info("meeting deleted", zap.String("tutorID", tutorID), zap.String("meetingID", meetingID))

	s.cancelReminder(ctx, m.ID)
	return nil
}

// DeleteSeries removes the occurrences of a series that have not started yet. Occurrences
// already in the past are kept as history.
func (s *DefaultMeetingService) DeleteSeries(ctx context.Context, tutorID, recurringID string) (*models.SeriesDeleteResult, error) {
	if recurringID == "" {
		return nil, NewValidationError("meetingrecurringid", "Recurring meeting ID is required")
	}
	all, err := s.Repo.GetBySeriesID(ctx, recurringID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring meetings: %w", err)
	}

	var owned []models.Meeting
	for _, m := range all {
		if m.TutorID == tutorID {
			owned = append(owned, m)
		}
	}
	if len(owned) == 0 {
		return nil, &NotFoundError{Resource: "Recurring meetings", ID: recurringID}
	}

	now := s.now().UTC()
	var ids []string
	for _, m := range owned {
		start, perr := ParseCanonical(m.StartDate, m.StartTime)
		if perr != nil {
			s.logger().Warn("skipping occurrence with unreadable start", zap.String("meetingID", m.ID), zap.Error(perr))
			continue
		}
		if !start.Before(now) {
			ids = append(ids, m.ID)
		}
	}

	deleted, err := s.Repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to delete recurring meetings: %w", err)
	}
	meetingsDeleted.WithLabelValues("series").Add(float64(deleted))
	s.logger().Info("recurring meetings deleted",
		zap.String("tutorID", tutorID),
		zap.String("seriesID", recurringID),
		zap.Int("matched", len(owned)),
		zap.Int64("deleted", deleted),
	)

	for _, id := range ids {
		s.cancelReminder(ctx, id)
	}
	return &models.SeriesDeleteResult{
		RecurringID: recurringID,
		Matched:     len(owned),
		Deleted:     int(deleted),
	}, nil
}
