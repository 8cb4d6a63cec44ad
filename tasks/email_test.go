package tasks

import (
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vayuhu/models"
)

func TestNewBookingEmailTask(t *testing.T) {
	payload := models.EmailPayload{
		UserID:      "user-1",
		UserEmail:   "a@b.test",
		TotalAmount: 590,
		Bookings: []models.EmailBookingLine{
			{WorkspaceTitle: "Open Desk", PlanType: "Daily", FinalAmount: 590},
		},
	}

	task, opts, err := NewBookingEmailTask(payload)
	require.NoError(t, err)
	assert.Equal(t, TypeBookingEmail, task.Type())

	var decoded models.EmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)

	// Dispatch is fire-once.
	assert.Contains(t, opts, asynq.MaxRetry(0))
}
