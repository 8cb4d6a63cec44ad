package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"vayuhu/config"
	"vayuhu/models"
)

const TypeBookingEmail = "email:booking"

// NewBookingEmailTask wraps a confirmation email payload as a queue task.
// MaxRetry is zero: email dispatch is fire-once, a failure is only ever a
// warning to the user.
func NewBookingEmailTask(payload models.EmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingEmail, b)
	opts := []asynq.Option{asynq.MaxRetry(0)}
	return task, opts, nil
}

// QueueMailer enqueues confirmation emails onto the task queue.
type QueueMailer struct {
	client *asynq.Client
}

func NewQueueMailer() *QueueMailer {
	return &QueueMailer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskQueueDB,
		}),
	}
}

func (m *QueueMailer) EnqueueBookingEmail(payload models.EmailPayload) error {
	task, opts, err := NewBookingEmailTask(payload)
	if err != nil {
		return err
	}
	_, err = m.client.Enqueue(task, opts...)
	return err
}

func (m *QueueMailer) Close() error {
	return m.client.Close()
}
