package interview

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"hireflow/models"
)

// TaskTypeInterviewReminder is the asynq task type for upcoming-interview
// reminders.
const TaskTypeInterviewReminder = "interview:reminder"

// reminderLead is how long before the scheduled instant a reminder fires.
const reminderLead = 30 * time.Minute

// ReminderPayload is the task body for an interview reminder.
type ReminderPayload struct {
	InterviewID string `json:"interviewId"`
}

// ReminderScheduler enqueues a reminder to fire at a given instant.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, interviewID string, fireAt time.Time) error
}

// AsynqReminderScheduler schedules reminders through an asynq client.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func NewAsynqReminderScheduler(client *asynq.Client) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: client}
}

func (r *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, interviewID string, fireAt time.Time) error {
	payload, err := json.Marshal(ReminderPayload{InterviewID: interviewID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TaskTypeInterviewReminder, payload)
	_, err = r.Client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	return err
}

// scheduleReminder enqueues a best-effort reminder 30 minutes ahead of the
// interview; failures are logged, never surfaced to the caller.
func (s *DefaultSchedulingService) scheduleReminder(ctx context.Context, iv models.Interview) {
	if s.Reminders == nil {
		return
	}
	fireAt := iv.ScheduledDate.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return
	}
	if err := s.Reminders.ScheduleReminder(ctx, iv.ID, fireAt); err != nil {
		s.Logger.Warn("failed to schedule interview reminder",
			zap.String("interviewId", iv.ID), zap.Error(err))
	}
}
