// Package recommend turns a visitor's description of their care needs into
// a service recommendation from the generative-text API.
package recommend

import (
	"context"
	"log/slog"

	"github.com/Fawzia2025/cb-care-live/domain/catalog"
	"github.com/Fawzia2025/cb-care-live/internal/viewstate"
	"github.com/Fawzia2025/cb-care-live/pkg/llm"
	"github.com/Fawzia2025/cb-care-live/pkg/llm/gemini"
	"github.com/Fawzia2025/cb-care-live/pkg/logger"
)

const (
	// ErrorMessage is shown for a missing credential or a failed call
	ErrorMessage = "There was an error getting a recommendation. Please try again later."

	// FallbackMessage is shown when the model returns nothing usable
	FallbackMessage = "No recommendation found."
)

// Service requests recommendations
type Service struct {
	llm     llm.Provider
	entries []catalog.Entry
	log     *slog.Logger
}

// NewService creates a recommendation service. provider may be nil when no
// API key is configured.
func NewService(provider llm.Provider, cat *catalog.Catalog, log *slog.Logger) *Service {
	return &Service{
		llm:     provider,
		entries: cat.Entries(),
		log:     log.With(logger.Scope("recommend")),
	}
}

// Recommend makes at most one generation request and settles into
// Succeeded or Failed. It never returns Pending.
func (s *Service) Recommend(ctx context.Context, needs string) viewstate.Result {
	if s.llm == nil || !s.llm.IsConfigured() {
		s.log.Warn("recommendation requested without a configured API key")
		return viewstate.Failure(ErrorMessage)
	}

	resp, err := s.llm.Generate(ctx, BuildPrompt(s.entries, needs))
	if err != nil {
		s.log.Error("recommendation request failed", logger.Error(err))
		return viewstate.Failure(ErrorMessage)
	}

	parsed := gemini.ParseResponse(resp)
	switch parsed.Kind {
	case gemini.KindText:
		return viewstate.Success(parsed.Text)
	case gemini.KindMalformed:
		s.log.Warn("malformed recommendation response")
		return viewstate.Success(FallbackMessage)
	default:
		s.log.Info("recommendation response had no text")
		return viewstate.Success(FallbackMessage)
	}
}
