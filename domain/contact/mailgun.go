package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/Fawzia2025/cb-care-live/pkg/logger"
)

// MailgunRelay sends submissions via the Mailgun API.
// When a stored template name is configured Mailgun renders the message;
// otherwise the body is rendered from the embedded templates.
type MailgunRelay struct {
	cfg       *Config
	log       *slog.Logger
	client    *mailgun.MailgunImpl
	templates *TemplateService
}

// NewMailgunRelay creates a Mailgun relay. Credentials are not validated
// here; a bad domain or key surfaces as a Send error.
func NewMailgunRelay(cfg *Config, templates *TemplateService, log *slog.Logger) *MailgunRelay {
	client := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	if cfg.APIBase != "" {
		client.SetAPIBase(cfg.APIBase)
	}

	return &MailgunRelay{
		cfg:       cfg,
		log:       log.With(logger.Scope("contact.mailgun")),
		client:    client,
		templates: templates,
	}
}

// Send makes exactly one API call
func (r *MailgunRelay) Send(ctx context.Context, sub Submission) error {
	vars := templateVariables(sub, r.cfg.SiteName)

	body, err := r.templates.Render(vars)
	if err != nil {
		return err
	}

	from := fmt.Sprintf("%s <%s>", r.cfg.FromName, r.cfg.FromEmail)
	message := r.client.NewMessage(from, r.cfg.Subject, body.Text, r.cfg.Recipient)
	if sub.Email != "" {
		message.SetReplyTo(sub.Email)
	}

	if r.cfg.TemplateName != "" {
		message.SetTemplate(r.cfg.TemplateName)
		for k, v := range vars {
			if err := message.AddTemplateVariable(k, v); err != nil {
				return fmt.Errorf("failed to add template variable %s: %w", k, err)
			}
		}
	} else {
		message.SetHtml(body.HTML)
	}

	sendCtx := ctx
	if r.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, r.cfg.SendTimeout)
		defer cancel()
	}

	_, messageID, err := r.client.Send(sendCtx, message)
	if err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}

	r.log.Info("contact message relayed",
		slog.String("message_id", messageID),
		slog.Bool("stored_template", r.cfg.TemplateName != ""))
	return nil
}

// noOpRelay accepts every submission without sending, for development
type noOpRelay struct {
	log *slog.Logger
}

func (r *noOpRelay) Send(ctx context.Context, sub Submission) error {
	r.log.Info("contact relay (no-op)",
		slog.String("from", sub.Email),
		slog.Int("message_length", len(sub.Message)))
	return nil
}
