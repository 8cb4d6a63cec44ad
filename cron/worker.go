package cron

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"vayuhu/config"
	"vayuhu/models"
	"vayuhu/tasks"
	"vayuhu/utils"
)

// EmailSender dispatches a confirmation email through the backend.
type EmailSender interface {
	SendBookingEmail(ctx context.Context, payload models.EmailPayload) error
}

// InitEmailWorker runs the async email worker in the background. Dispatch
// failures are logged as warnings only; the booking they belong to has
// already been persisted.
func InitEmailWorker(sender EmailSender) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskQueueDB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingEmail, handleBookingEmail(sender))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting email worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("email worker stopped", zap.Error(err))
		}
	}()
}

func handleBookingEmail(sender EmailSender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var payload models.EmailPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logger.Error("invalid email task payload", zap.Error(err))
			return err
		}

		if err := sender.SendBookingEmail(ctx, payload); err != nil {
			logger.Warn("confirmation email dispatch failed",
				zap.String("userId", payload.UserID), zap.Error(err))
			return err
		}

		logger.Info("confirmation email dispatched",
			zap.String("userId", payload.UserID),
			zap.Int("bookings", len(payload.Bookings)))
		return nil
	}
}
