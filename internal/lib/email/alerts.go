package email

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/timesheet/internal/model"
)

// PhaseThresholdData is the model of the phase threshold template.
type PhaseThresholdData struct {
	GeneratedAt time.Time
	Phases      []model.PhaseTotal
}

// SendPhaseThresholdAlert tells an administrator which phases reached their
// hour threshold.
func (c *Client) SendPhaseThresholdAlert(ctx context.Context, to string, phases []model.PhaseTotal) error {
	subject := fmt.Sprintf("%d work phase(s) over the hour threshold", len(phases))

	return c.SendEmail(ctx, to, subject, TemplatePhaseThreshold, PhaseThresholdData{
		GeneratedAt: time.Now(),
		Phases:      phases,
	})
}
