package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"hireflow/config"
	interviewRepo "hireflow/database/repository/interview"
	"hireflow/models"
	"hireflow/services/interview"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(repo interviewRepo.InterviewRepository, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueue,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(interview.TaskTypeInterviewReminder, handleReminderTask(repo, logger))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReminderTask re-loads the interview at fire time and emits an audit
// log entry. Interviews that were cancelled, completed or soft-deleted since
// the reminder was enqueued are skipped silently.
func handleReminderTask(repo interviewRepo.InterviewRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p interview.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		iv, err := repo.GetActiveByID(ctx, p.InterviewID)
		if err != nil {
			logger.Error("failed to load interview for reminder",
				zap.String("interviewId", p.InterviewID), zap.Error(err))
			return err
		}
		if iv == nil || (iv.Status != models.StatusScheduled && iv.Status != models.StatusRescheduled) {
			logger.Debug("skipping reminder for inactive interview",
				zap.String("interviewId", p.InterviewID))
			return nil
		}

		logger.Info("upcoming interview",
			zap.String("interviewId", iv.ID),
			zap.String("candidateName", iv.CandidateName),
			zap.String("jobTitle", iv.JobTitle),
			zap.Time("scheduledDate", iv.ScheduledDate),
			zap.Strings("interviewers", iv.Interviewers))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueue,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
