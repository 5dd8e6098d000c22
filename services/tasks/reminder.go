package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tutorsched/models"

	"github.com/hibiken/asynq"
)

const TypeMeetingReminder = "meeting:reminder"

// ReminderTaskID is the queue-wide id of a meeting's reminder, so it can be found and replaced.
func ReminderTaskID(meetingID string) string {
	return "meeting-reminder:" + meetingID
}

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeMeetingReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(ReminderTaskID(payload.MeetingID)),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// ReminderFireTime is when a reminder for a meeting starting at start should run.
func ReminderFireTime(start time.Time, lead time.Duration) time.Time {
	return start.Add(-lead)
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type taskDeleter interface {
	DeleteTask(queue, id string) error
}

// AsynqReminderScheduler queues one reminder per meeting on the asynq default queue.
type AsynqReminderScheduler struct {
	client    enqueuer
	inspector taskDeleter
	Lead      time.Duration
	Now       func() time.Time
}

func NewAsynqReminderScheduler(client *asynq.Client, inspector *asynq.Inspector, lead time.Duration) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: client, inspector: inspector, Lead: lead, Now: time.Now}
}

// Schedule replaces any queued reminder for m. Meetings whose reminder time has already
// passed get none.
func (s *AsynqReminderScheduler) Schedule(ctx context.Context, m models.Meeting) error {
	if err := s.Cancel(ctx, m.ID); err != nil {
		return err
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", m.StartDate+" "+m.StartTime, time.UTC)
	if err != nil {
		return fmt.Errorf("reminder for meeting %s: %w", m.ID, err)
	}
	fireAt := ReminderFireTime(start, s.Lead)
	if !fireAt.After(s.Now()) {
		return nil
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{
		MeetingID: m.ID,
		TutorID:   m.TutorID,
		StartDate: m.StartDate,
		StartTime: m.StartTime,
	}, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder for meeting %s: %w", m.ID, err)
	}
	return nil
}

// Cancel drops the queued reminder for meetingID, if any.
func (s *AsynqReminderScheduler) Cancel(ctx context.Context, meetingID string) error {
	err := s.inspector.DeleteTask("default", ReminderTaskID(meetingID))
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return fmt.Errorf("cancel reminder for meeting %s: %w", meetingID, err)
}
