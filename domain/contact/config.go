package contact

import (
	"time"

	"github.com/Fawzia2025/cb-care-live/internal/config"
)

// Config contains mail relay configuration
type Config struct {
	Enabled       bool
	MailgunDomain string
	MailgunAPIKey string
	APIBase       string
	TemplateName  string
	Recipient     string
	FromEmail     string
	FromName      string
	Subject       string
	SiteName      string
	SendTimeout   time.Duration
}

// NewConfig creates relay configuration from the app config
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		Enabled:       cfg.Email.Enabled,
		MailgunDomain: cfg.Email.MailgunDomain,
		MailgunAPIKey: cfg.Email.MailgunAPIKey,
		APIBase:       cfg.Email.MailgunAPIBase,
		TemplateName:  cfg.Email.TemplateName,
		Recipient:     cfg.Email.Recipient,
		FromEmail:     cfg.Email.FromEmail,
		FromName:      cfg.Email.FromName,
		Subject:       cfg.Email.Subject,
		SiteName:      cfg.Site.Name,
		SendTimeout:   cfg.Email.SendTimeout,
	}
}

// IsConfigured returns true if Mailgun credentials are present
func (c *Config) IsConfigured() bool {
	return c.MailgunDomain != "" && c.MailgunAPIKey != ""
}
