package email

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func newTestClient(t *testing.T, s sender) *Client {
	t.Helper()

	tmpl, err := parseTemplates()
	require.NoError(t, err)

	logger := zerolog.Nop()
	return &Client{emails: s, from: "Timesheet <alerts@example.com>", templates: tmpl, logger: &logger}
}

func TestSendPhaseThresholdAlertRendersPhases(t *testing.T) {
	t.Parallel()

	fake := &fakeSender{}
	client := newTestClient(t, fake)

	phases := []model.PhaseTotal{{
		Phase:       model.WorkPhase{ID: 1, Code: "BOR0101", Description: "FORATURA PASSAGGI CAVI SU SOLETTA"},
		TotalHours:  120,
		Threshold:   100,
		PercentUsed: 120,
		Exceeded:    true,
	}}

	require.NoError(t, client.SendPhaseThresholdAlert(context.Background(), "admin@example.com", phases))
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	require.Equal(t, []string{"admin@example.com"}, msg.To)
	require.Equal(t, "Timesheet <alerts@example.com>", msg.From)
	require.Equal(t, "1 work phase(s) over the hour threshold", msg.Subject)
	require.Contains(t, msg.Html, "BOR0101")
	require.Contains(t, msg.Html, "FORATURA PASSAGGI CAVI SU SOLETTA")
	require.Contains(t, msg.Html, "120%")
}

func TestSendEmailWrapsProviderError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, &fakeSender{err: errors.New("rate limited")})

	err := client.SendPhaseThresholdAlert(context.Background(), "admin@example.com", nil)
	require.ErrorContains(t, err, "failed to send email: rate limited")
}

func TestRenderUnknownTemplate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, &fakeSender{})

	_, err := client.render(Template("missing"), nil)
	require.Error(t, err)
}
