// Package email sends transactional e-mail through Resend.
//
// Templates are embedded in the binary and rendered with html/template plus
// the sprig function map.
package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/deppfellow/timesheet/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

// sender is the part of the Resend e-mail service the client uses.
type sender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Client wraps the Resend client and a logger.
type Client struct {
	emails    sender
	from      string
	templates *template.Template
	logger    *zerolog.Logger
}

// NewClient creates an e-mail Client from the integration config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) (*Client, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Client{
		emails:    resend.NewClient(cfg.Integration.ResendAPIKey).Emails,
		from:      cfg.Integration.AlertFrom,
		templates: tmpl,
		logger:    logger,
	}, nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("emails").Funcs(sprig.FuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse email templates")
	}
	return tmpl, nil
}

// render executes the named template into an HTML string.
func (c *Client) render(templateName Template, data any) (string, error) {
	var body bytes.Buffer
	if err := c.templates.ExecuteTemplate(&body, templateName.file(), data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}

// SendEmail renders templateName with data and sends it to a single
// recipient.
func (c *Client) SendEmail(ctx context.Context, to, subject string, templateName Template, data any) error {
	html, err := c.render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := c.emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("template", string(templateName)).
		Str("email_id", sent.Id).
		Msg("email accepted by provider")

	return nil
}
