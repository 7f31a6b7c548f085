package job

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskPhaseThresholdAlert is the job type name stored in Redis.
	TaskPhaseThresholdAlert = "alert:phase_threshold"
)

// PhaseThresholdAlertPayload is the JSON payload of the threshold task.
type PhaseThresholdAlertPayload struct {
	To string `json:"to"`
}

// NewPhaseThresholdAlertTask builds the task that checks every phase against
// its threshold and mails to the exceeded ones.
func NewPhaseThresholdAlertTask(to string) (*asynq.Task, error) {
	if to == "" {
		return nil, errors.New("phase threshold alert needs a recipient")
	}

	payload, err := json.Marshal(PhaseThresholdAlertPayload{To: to})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPhaseThresholdAlert,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(time.Minute),
		asynq.Unique(10*time.Minute),
	), nil
}

// EnqueuePhaseThresholdAlert queues an immediate threshold check.
func (j *JobService) EnqueuePhaseThresholdAlert(ctx context.Context) (*asynq.TaskInfo, error) {
	task, err := NewPhaseThresholdAlertTask(j.cfg.Integration.AlertTo)
	if err != nil {
		return nil, err
	}
	return j.Client.EnqueueContext(ctx, task)
}
