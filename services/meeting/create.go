package meeting

import (
	"context"
	"fmt"
	"time"

	"tutorsched/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validateRequest(tutorID string, req models.MeetingRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"tutorid", tutorID},
		{"meetingtype", req.Type},
		{"meetingstudent", req.StudentName},
		{"meetingstudentid", req.StudentID},
		{"meetingstartdate", req.StartDate},
		{"meetingstarttime", req.StartTime},
		{"meetingenddate", req.EndDate},
		{"meetingendtime", req.EndTime},
		{"meetingstudenttimezone", req.StudentTimezone},
		{"meetingscheduletimezone", req.ScheduleTimezone},
		{"meetingrecurring", req.Recurring},
	}
	for _, r := range required {
		if r.value == "" {
			return NewValidationError(r.field, "All required fields must be provided")
		}
	}
	if _, err := LoadZone(req.StudentTimezone); err != nil {
		return err
	}
	return nil
}

// CreateMeeting validates, conflict-checks and stores a single meeting or a whole series.
// A series is stored only if every occurrence is free.
func (s *DefaultMeetingService) CreateMeeting(ctx context.Context, tutorID string, req models.MeetingRequest) ([]models.Meeting, error) {
	logger := s.logger().With(zap.String("tutorID", tutorID), zap.String("recurring", req.Recurring))

	if err := validateRequest(tutorID, req); err != nil {
		return nil, err
	}
	occurrences, err := ExpandOccurrences(req, s.MaxRecurrence)
	if err != nil {
		return nil, err
	}
	series := req.Recurring != models.RecurrenceNone

	release, err := s.lockTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.checkOccurrences(ctx, tutorID, occurrences, series); err != nil {
		if _, ok := err.(*MeetingConflictError); ok {
			logger.Info("meeting create rejected", zap.Error(err))
		}
		return nil, err
	}

	var seriesID string
	if series {
		seriesID = uuid.New().String()
	}
	meetings := make([]models.Meeting, 0, len(occurrences))
	for _, occ := range occurrences {
		meetings = append(meetings, buildMeeting(tutorID, req, occ, seriesID))
	}

	if series {
		if err := s.Repo.CreateMany(ctx, meetings); err != nil {
			return nil, fmt.Errorf("failed to store recurring meetings: %w", err)
		}
		meetingsCreated.WithLabelValues("series").Add(float64(len(meetings)))
	} else {
		if err := s.Repo.Create(ctx, &meetings[0]); err != nil {
			return nil, fmt.Errorf("failed to store meeting: %w", err)
		}
		meetingsCreated.WithLabelValues("single").Inc()
	}
	logger.Info("meetings created", zap.Int("count", len(meetings)), zap.String("seriesID", seriesID))

	for _, m := range meetings {
		s.scheduleReminder(ctx, m)
	}
	return meetings, nil
}

// checkOccurrences loads the tutor's meetings across the whole span once, then checks each
// occurrence against them and against the occurrences before it.
func (s *DefaultMeetingService) checkOccurrences(ctx context.Context, tutorID string, occs []Occurrence, series bool) error {
	started := time.Now()
	defer func() { conflictCheckSeconds.Observe(time.Since(started).Seconds()) }()

	spanStart, _ := FormatCanonical(occs[0].Start)
	spanEnd, _ := FormatCanonical(occs[len(occs)-1].End)
	candidates, err := s.Repo.FindCandidates(ctx, tutorID, spanStart, spanEnd, "")
	if err != nil {
		return fmt.Errorf("failed to load candidate meetings: %w", err)
	}

	path := "create"
	if series {
		path = "series"
	}
	for i, occ := range occs {
		hit, err := FirstConflict(candidates, occ.Start, occ.End)
		if err != nil {
			return err
		}
		if hit != nil {
			meetingConflicts.WithLabelValues(path).Inc()
			return occurrenceConflict(occ, hit.ID)
		}
		for _, prev := range occs[:i] {
			if Overlaps(occ.Start, occ.End, prev.Start, prev.End) {
				meetingConflicts.WithLabelValues(path).Inc()
				return occurrenceConflict(occ, "")
			}
		}
	}
	return nil
}

// occurrenceConflict reports the first occurrence by its UTC date and later ones by their
// local date, matching what callers of the API already display.
func occurrenceConflict(occ Occurrence, meetingID string) error {
	if occ.Index == 0 {
		date, _ := FormatCanonical(occ.Start)
		return &MeetingConflictError{MeetingID: meetingID, Date: date}
	}
	return &MeetingConflictError{MeetingID: meetingID, Date: occ.LocalDate, Series: true}
}

func buildMeeting(tutorID string, req models.MeetingRequest, occ Occurrence, seriesID string) models.Meeting {
	m := models.Meeting{
		Name:            req.Name,
		Type:            req.Type,
		TutorID:         tutorID,
		StudentName:     req.StudentName,
		StudentID:       req.StudentID,
		StudentPhone:    req.StudentPhone,
		Link:            req.Link,
		Notes:           req.Notes,
		StudentTimezone: req.StudentTimezone,
		Recurring:       req.Recurring,
		RecurringID:     seriesID,
	}
	if seriesID != "" {
		m.RecurringNumber = req.RecurringNumber
	}
	applyCanonical(&m, occ.Start, occ.End)
	return m
}
