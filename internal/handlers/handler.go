// Package handlers serves the landing page, its form actions and the JSON API.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"go.uber.org/fx"

	"github.com/Fawzia2025/cb-care-live/domain/catalog"
	"github.com/Fawzia2025/cb-care-live/domain/contact"
	"github.com/Fawzia2025/cb-care-live/domain/recommend"
	"github.com/Fawzia2025/cb-care-live/internal/config"
	"github.com/Fawzia2025/cb-care-live/internal/session"
	"github.com/Fawzia2025/cb-care-live/internal/viewstate"
	"github.com/Fawzia2025/cb-care-live/pkg/logger"
)

// Recommender produces a settled recommendation result
type Recommender interface {
	Recommend(ctx context.Context, needs string) viewstate.Result
}

// Submitter produces a settled contact result
type Submitter interface {
	Submit(ctx context.Context, sub contact.Submission) viewstate.Result
}

// Handler serves every route of the site
type Handler struct {
	sessions  *session.Store
	catalog   *catalog.Catalog
	recommend Recommender
	contact   Submitter
	site      config.SiteConfig
	log       *slog.Logger
	now       func() time.Time
}

// HandlerParams are the dependencies for creating a Handler
type HandlerParams struct {
	fx.In

	Config    *config.Config
	Log       *slog.Logger
	Sessions  *session.Store
	Catalog   *catalog.Catalog
	Recommend *recommend.Service
	Contact   *contact.Service
}

// NewHandler creates the site handler
func NewHandler(p HandlerParams) *Handler {
	return New(p.Config.Site, p.Sessions, p.Catalog, p.Recommend, p.Contact, p.Log)
}

// New creates a handler from its collaborators
func New(site config.SiteConfig, sessions *session.Store, cat *catalog.Catalog, rec Recommender, sub Submitter, log *slog.Logger) *Handler {
	return &Handler{
		sessions:  sessions,
		catalog:   cat,
		recommend: rec,
		contact:   sub,
		site:      site,
		log:       log.With(logger.Scope("handlers")),
		now:       time.Now,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// detach keeps the request's values but not its cancellation: once an
// external call starts it runs to completion or to its configured timeout,
// even if the visitor goes away.
func detach(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}
