package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`

	// LLM configuration (care recommendations)
	LLM LLMConfig

	// Email configuration (contact form relay)
	Email EmailConfig

	// Visitor session configuration
	Session SessionConfig

	// Public contact details shown on the page
	Site SiteConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// LLMConfig holds generative-text API settings
type LLMConfig struct {
	// Gemini API key (Google AI Studio)
	APIKey string `env:"GEMINI_API_KEY" envDefault:""`

	// Model name
	Model string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`

	// BaseURL overrides the Gemini API endpoint (proxies, tests)
	BaseURL string `env:"GEMINI_BASE_URL" envDefault:""`

	// Temperature for generation (0.0-2.0)
	Temperature float64 `env:"LLM_TEMPERATURE" envDefault:"0.7"`

	// Request timeout
	Timeout time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`

	// Disable LLM network calls (for testing)
	NetworkDisabled bool `env:"LLM_NETWORK_DISABLED" envDefault:"false"`
}

// IsEnabled returns true if the LLM is configured
func (l *LLMConfig) IsEnabled() bool {
	if l.NetworkDisabled {
		return false
	}
	return l.APIKey != ""
}

// EmailConfig holds mail-relay settings.
// The Mailgun domain, API key and template name play the role of the
// relay's service, account and template identifiers.
type EmailConfig struct {
	// Enabled determines if email sending is enabled
	Enabled bool `env:"EMAIL_ENABLED" envDefault:"true"`
	// MailgunDomain is the Mailgun sending domain
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	// MailgunAPIKey is the Mailgun API key
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	// MailgunAPIBase overrides the API base (EU region, tests)
	MailgunAPIBase string `env:"MAILGUN_API_BASE" envDefault:""`
	// TemplateName is the stored Mailgun template; empty renders the body locally
	TemplateName string `env:"MAILGUN_TEMPLATE" envDefault:""`
	// Recipient receives contact form submissions
	Recipient string `env:"CONTACT_RECIPIENT" envDefault:""`
	// FromEmail is the sender address
	FromEmail string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@example.com"`
	// FromName is the sender display name
	FromName string `env:"EMAIL_FROM_NAME" envDefault:"Central Bridge Care"`
	// Subject of relayed messages
	Subject string `env:"CONTACT_SUBJECT" envDefault:"New website enquiry"`
	// SendTimeout bounds a single relay call
	SendTimeout time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"30s"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// SessionConfig holds per-visitor view state settings
type SessionConfig struct {
	CookieName    string        `env:"SESSION_COOKIE_NAME" envDefault:"cbc_session"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	SecureCookie  bool          `env:"SESSION_SECURE_COOKIE" envDefault:"false"`
}

// SiteConfig holds the organisation details rendered on the page
type SiteConfig struct {
	Name  string `env:"SITE_NAME" envDefault:"Central Bridge Care"`
	Phone string `env:"SITE_PHONE" envDefault:""`
	Email string `env:"SITE_EMAIL" envDefault:""`
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.Bool("llm_enabled", cfg.LLM.IsEnabled()),
		slog.Bool("email_enabled", cfg.Email.Enabled),
		slog.Bool("mailgun_configured", cfg.Email.IsConfigured()),
	)

	if !cfg.LLM.IsEnabled() {
		log.Warn("GEMINI_API_KEY is not set; care recommendations will report an error")
	}

	return cfg, nil
}
