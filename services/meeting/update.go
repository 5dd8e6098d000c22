package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	meetingRepo "tutorsched/database/repository/meeting"
	"tutorsched/models"

	"go.uber.org/zap"
)

// ownedMeeting loads a meeting and hides it from every tutor but its owner.
func (s *DefaultMeetingService) ownedMeeting(ctx context.Context, tutorID, meetingID string) (*models.Meeting, error) {
	if meetingID == "" {
		return nil, NewValidationError("id", "Meeting ID is required")
	}
	m, err := s.Repo.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Meeting", ID: meetingID}
		}
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}
	if m.TutorID != tutorID {
		return nil, &NotFoundError{Resource: "Meeting", ID: meetingID}
	}
	return m, nil
}

// UpdateMeeting applies patch to the tutor's meeting. Time changes are re-normalized to UTC
// and re-checked for conflicts against every other meeting of the tutor.
func (s *DefaultMeetingService) UpdateMeeting(ctx context.Context, tutorID, meetingID string, patch models.MeetingPatch) (*models.Meeting, error) {
	logger := s.logger().With(zap.String("tutorID", tutorID), zap.String("meetingID", meetingID))

	retime := patch.TouchesTime()
	if retime {
		release, err := s.lockTutor(ctx, tutorID)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	m, err := s.ownedMeeting(ctx, tutorID, meetingID)
	if err != nil {
		return nil, err
	}
	if err := applyDetails(m, patch); err != nil {
		return nil, err
	}

	if retime {
		start, end, err := patchedInterval(*m, patch)
		if err != nil {
			return nil, err
		}
		if err := s.checkUpdateConflict(ctx, logger, *m, start, end); err != nil {
			return nil, err
		}
		applyCanonical(m, start, end)
	}

	if err := s.Repo.Update(ctx, m); err != nil {
		if errors.Is(err, meetingRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Meeting", ID: meetingID}
		}
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	logger.Info("meeting updated", zap.Bool("retimed", retime))

	if retime {
		s.scheduleReminder(ctx, *m)
	}
	return m, nil
}

func applyDetails(m *models.Meeting, p models.MeetingPatch) error {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&m.Name, p.Name)
	set(&m.Link, p.Link)
	set(&m.Notes, p.Notes)
	set(&m.StudentPhone, p.StudentPhone)

	nonEmpty := []struct {
		field string
		dst   *string
		v     *string
	}{
		{"meetingtype", &m.Type, p.Type},
		{"meetingstudent", &m.StudentName, p.StudentName},
		{"meetingstudentid", &m.StudentID, p.StudentID},
		{"meetingstudenttimezone", &m.StudentTimezone, p.StudentTimezone},
	}
	for _, f := range nonEmpty {
		if f.v == nil {
			continue
		}
		if *f.v == "" {
			return NewValidationError(f.field, "cannot be empty")
		}
		*f.dst = *f.v
	}
	if p.StudentTimezone != nil {
		if _, err := LoadZone(*p.StudentTimezone); err != nil {
			return err
		}
	}
	return nil
}

// patchedInterval rebuilds the meeting interval from patched values, falling back to the
// stored ones. Stored values are UTC, so a patch without a zone is read as UTC.
func patchedInterval(m models.Meeting, p models.MeetingPatch) (time.Time, time.Time, error) {
	pick := func(v *string, stored string) string {
		if v != nil && *v != "" {
			return *v
		}
		return stored
	}
	zone := pick(p.ScheduleTimezone, m.ScheduleTimezone)
	if zone == "" {
		zone = models.CanonicalTimezone
	}

	start, err := ToCanonical(pick(p.StartDate, m.StartDate), pick(p.StartTime, m.StartTime), zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ToCanonical(pick(p.EndDate, m.EndDate), pick(p.EndTime, m.EndTime), zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, &InvalidTimeInputError{
			Input:  start.Format(dateTimeLayout),
			Reason: "meeting must end after it starts",
		}
	}
	return start, end, nil
}

func (s *DefaultMeetingService) checkUpdateConflict(ctx context.Context, logger *zap.Logger, m models.Meeting, start, end time.Time) error {
	started := time.Now()
	defer func() { conflictCheckSeconds.Observe(time.Since(started).Seconds()) }()

	startDate, _ := FormatCanonical(start)
	endDate, _ := FormatCanonical(end)
	candidates, err := s.Repo.FindCandidates(ctx, m.TutorID, startDate, endDate, m.ID)
	if err != nil {
		return fmt.Errorf("failed to load candidate meetings: %w", err)
	}
	hit, err := FirstConflict(candidates, start, end)
	if err != nil || hit == nil {
		return err
	}

	meetingConflicts.WithLabelValues("update").Inc()
	hs, he, _ := storedInterval(*hit)
	logger.Info("meeting update rejected",
		zap.String("conflictingMeetingID", hit.ID),
		zap.String("overlap", ClassifyOverlap(hs, he, start, end)),
	)
	return &MeetingConflictError{MeetingID: hit.ID, Date: startDate}
}
