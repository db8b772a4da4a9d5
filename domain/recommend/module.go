package recommend

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Fawzia2025/cb-care-live/internal/config"
	"github.com/Fawzia2025/cb-care-live/pkg/llm"
	"github.com/Fawzia2025/cb-care-live/pkg/llm/gemini"
	"github.com/Fawzia2025/cb-care-live/pkg/logger"
)

// Module provides the recommendation service and its model client
var Module = fx.Module("recommend",
	fx.Provide(NewProvider),
	fx.Provide(NewService),
)

// NewProvider builds the Gemini client, or returns a nil Provider when no API
// key is configured so requests fail fast without an outbound call.
func NewProvider(cfg *config.Config, log *slog.Logger) (llm.Provider, error) {
	if !cfg.LLM.IsEnabled() {
		return nil, nil
	}

	client, err := gemini.NewClient(context.Background(), gemini.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		BaseURL:     cfg.LLM.BaseURL,
		Timeout:     cfg.LLM.Timeout,
		Temperature: cfg.LLM.Temperature,
	}, gemini.WithLogger(log.With(logger.Scope("gemini"))))
	if err != nil {
		return nil, err
	}

	log.Info("gemini client initialized", slog.String("model", client.Model()))
	return client, nil
}
