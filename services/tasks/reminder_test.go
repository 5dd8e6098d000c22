package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tutorsched/models"

	"github.com/hibiken/asynq"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	f.opts = append(f.opts, opts)
	return &asynq.TaskInfo{}, nil
}

type fakeDeleter struct {
	deleted []string
	err     error
}

func (f *fakeDeleter) DeleteTask(queue, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func newTestScheduler(now time.Time) (*AsynqReminderScheduler, *fakeEnqueuer, *fakeDeleter) {
	enq := &fakeEnqueuer{}
	del := &fakeDeleter{err: asynq.ErrTaskNotFound}
	return &AsynqReminderScheduler{
		client:    enq,
		inspector: del,
		Lead:      30 * time.Minute,
		Now:       func() time.Time { return now },
	}, enq, del
}

func TestScheduleReminder(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	m := models.Meeting{ID: "m-1", TutorID: "tutor-1", StartDate: "2024-01-01", StartTime: "09:00"}

	t.Run("future meeting is queued", func(t *testing.T) {
		s, enq, del := newTestScheduler(now)
		if err := s.Schedule(context.Background(), m); err != nil {
			t.Fatalf("Schedule: %v", err)
		}
		if len(del.deleted) != 1 || del.deleted[0] != "meeting-reminder:m-1" {
			t.Fatalf("previous reminder not cleared: %v", del.deleted)
		}
		if len(enq.tasks) != 1 || enq.tasks[0].Type() != TypeMeetingReminder {
			t.Fatalf("tasks = %v", enq.tasks)
		}
		var p models.ReminderPayload
		if err := json.Unmarshal(enq.tasks[0].Payload(), &p); err != nil {
			t.Fatalf("payload: %v", err)
		}
		if p.MeetingID != "m-1" || p.StartTime != "09:00" {
			t.Fatalf("payload = %+v", p)
		}
	})

	t.Run("reminder time already passed", func(t *testing.T) {
		s, enq, _ := newTestScheduler(now.Add(45 * time.Minute))
		if err := s.Schedule(context.Background(), m); err != nil {
			t.Fatalf("Schedule: %v", err)
		}
		if len(enq.tasks) != 0 {
			t.Fatalf("queued %d tasks for a late reminder", len(enq.tasks))
		}
	})
}

func TestCancelReminder(t *testing.T) {
	s, _, del := newTestScheduler(time.Now())
	if err := s.Cancel(context.Background(), "m-1"); err != nil {
		t.Fatalf("Cancel of missing task: %v", err)
	}
	del.err = errors.New("redis down")
	if err := s.Cancel(context.Background(), "m-1"); err == nil {
		t.Fatal("expected inspector error")
	}
}

func TestReminderFireTime(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if got := ReminderFireTime(start, 30*time.Minute); !got.Equal(start.Add(-30 * time.Minute)) {
		t.Fatalf("ReminderFireTime() = %v", got)
	}
}
