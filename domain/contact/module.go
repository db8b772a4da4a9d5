package contact

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Fawzia2025/cb-care-live/pkg/logger"
)

// Module provides the contact service and its mail relay
var Module = fx.Module("contact",
	fx.Provide(
		NewConfig,
		NewTemplateService,
		NewRelay, // Mailgun unless email is disabled
		NewService,
	),
)

// NewRelay picks the relay for the configuration. Only EMAIL_ENABLED=false
// selects the no-op relay; missing Mailgun credentials still go to Mailgun
// and fail there.
func NewRelay(cfg *Config, templates *TemplateService, log *slog.Logger) Relay {
	if !cfg.Enabled {
		log.Info("using no-op contact relay (email disabled)")
		return &noOpRelay{log: log.With(logger.Scope("contact.noop"))}
	}

	if !cfg.IsConfigured() {
		log.Warn("Mailgun credentials missing; contact submissions will fail")
	} else {
		log.Info("using Mailgun contact relay",
			slog.String("domain", cfg.MailgunDomain),
			slog.Bool("stored_template", cfg.TemplateName != ""))
	}
	return NewMailgunRelay(cfg, templates, log)
}
