package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	meetingRepo "tutorsched/database/repository/meeting"
	"tutorsched/models"
	"tutorsched/services/tasks"
	"tutorsched/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// MeetingLoader is the part of the meeting repository the worker needs.
type MeetingLoader interface {
	GetByID(ctx context.Context, id string) (*models.Meeting, error)
}

// InitReminderWorker runs the reminder worker in the background and returns the server
// so the caller can shut it down.
func InitReminderWorker(repo MeetingLoader) *asynq.Server {
	logger := utils.GetLogger()
	srv := asynq.NewServer(
		utils.QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeMeetingReminder, HandleReminderTask(repo, logger))

	go func() {
		logger.Info("[ReminderWorker] starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("[ReminderWorker] failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("[ReminderWorker] max retry attempts reached, reminders disabled")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleReminderTask reloads the meeting and logs the reminder in the student's timezone.
// Meetings that were deleted or moved since the task was queued are skipped.
func HandleReminderTask(repo MeetingLoader, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("[ReminderHandler] invalid payload", zap.Error(err))
			return fmt.Errorf("invalid reminder payload: %v: %w", err, asynq.SkipRetry)
		}

		m, err := repo.GetByID(ctx, p.MeetingID)
		if err != nil {
			if errors.Is(err, meetingRepo.ErrNotFound) {
				logger.Info("[ReminderHandler] meeting gone, skipping", zap.String("meetingID", p.MeetingID))
				return nil
			}
			return err
		}
		if m.StartDate != p.StartDate || m.StartTime != p.StartTime {
			logger.Info("[ReminderHandler] meeting moved, skipping stale reminder", zap.String("meetingID", m.ID))
			return nil
		}

		logger.Info("[ReminderHandler] meeting reminder",
			zap.String("meetingID", m.ID),
			zap.String("tutorID", m.TutorID),
			zap.String("student", m.StudentName),
			zap.String("studentStart", StudentLocalStart(*m)),
			zap.String("link", m.Link),
		)
		return nil
	}
}

// StudentLocalStart renders the meeting start in the student's timezone, falling back to UTC.
func StudentLocalStart(m models.Meeting) string {
	start, err := time.ParseInLocation("2006-01-02 15:04", m.StartDate+" "+m.StartTime, time.UTC)
	if err != nil {
		return m.StartDate + " " + m.StartTime + " UTC"
	}
	loc, err := time.LoadLocation(m.StudentTimezone)
	if err != nil || m.StudentTimezone == "" {
		loc = time.UTC
	}
	return start.In(loc).Format("2006-01-02 15:04 MST")
}
