package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/hibiken/asynq"
)

// PhaseReporter computes the per-phase totals. A nil month means all time.
type PhaseReporter interface {
	PhaseHours(ctx context.Context, month *string) ([]model.PhaseTotal, error)
}

// AlertSender delivers the threshold alert.
type AlertSender interface {
	SendPhaseThresholdAlert(ctx context.Context, to string, phases []model.PhaseTotal) error
}

// InitHandlers injects the dependencies of the task handlers. It must be
// called before Start.
func (j *JobService) InitHandlers(reporter PhaseReporter, sender AlertSender) {
	j.reporter = reporter
	j.sender = sender
}

// ExceededPhases keeps the phases that reached their threshold.
func ExceededPhases(totals []model.PhaseTotal) []model.PhaseTotal {
	exceeded := make([]model.PhaseTotal, 0, len(totals))
	for _, total := range totals {
		if total.Exceeded {
			exceeded = append(exceeded, total)
		}
	}
	return exceeded
}

func (j *JobService) handlePhaseThresholdAlertTask(ctx context.Context, t *asynq.Task) error {
	if j.reporter == nil || j.sender == nil {
		return errors.New("job handlers not initialized")
	}

	var p PhaseThresholdAlertPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal phase threshold payload: %w: %w", err, asynq.SkipRetry)
	}

	totals, err := j.reporter.PhaseHours(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to compute phase hours: %w", err)
	}

	exceeded := ExceededPhases(totals)
	if len(exceeded) == 0 {
		j.logger.Info().
			Int("phases", len(totals)).
			Msg("no work phase over threshold")
		return nil
	}

	j.logger.Info().
		Str("to", p.To).
		Int("exceeded", len(exceeded)).
		Msg("sending phase threshold alert")

	if err := j.sender.SendPhaseThresholdAlert(ctx, p.To, exceeded); err != nil {
		j.logger.Error().
			Str("to", p.To).
			Err(err).
			Msg("failed to send phase threshold alert")
		return err
	}

	return nil
}
