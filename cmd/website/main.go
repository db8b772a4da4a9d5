package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Fawzia2025/cb-care-live/domain/catalog"
	"github.com/Fawzia2025/cb-care-live/domain/contact"
	"github.com/Fawzia2025/cb-care-live/domain/recommend"
	"github.com/Fawzia2025/cb-care-live/internal/config"
	"github.com/Fawzia2025/cb-care-live/internal/handlers"
	"github.com/Fawzia2025/cb-care-live/internal/server"
	"github.com/Fawzia2025/cb-care-live/internal/session"
	"github.com/Fawzia2025/cb-care-live/pkg/logger"
)

func main() {
	// .env.local overrides .env; both are optional
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		logger.Module,
		config.Module,
		server.Module,

		session.Module,
		catalog.Module,
		recommend.Module,
		contact.Module,
		handlers.Module,
	).Run()
}
