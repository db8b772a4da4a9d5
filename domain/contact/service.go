package contact

import (
	"context"
	"log/slog"

	"github.com/Fawzia2025/cb-care-live/internal/viewstate"
	"github.com/Fawzia2025/cb-care-live/pkg/logger"
)

// Service submits contact messages
type Service struct {
	relay Relay
	log   *slog.Logger
}

// NewService creates a contact service
func NewService(relay Relay, log *slog.Logger) *Service {
	return &Service{
		relay: relay,
		log:   log.With(logger.Scope("contact")),
	}
}

// Submit relays one submission and settles into Succeeded or Failed.
// Nothing is validated, retried or deduplicated.
func (s *Service) Submit(ctx context.Context, sub Submission) viewstate.Result {
	if err := s.relay.Send(ctx, sub); err != nil {
		s.log.Error("contact submission failed", logger.Error(err))
		return viewstate.Failure(FailureMessage)
	}
	return viewstate.Success(SuccessMessage)
}
