package handlers

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/Fawzia2025/cb-care-live/domain/catalog"
	"github.com/Fawzia2025/cb-care-live/internal/components"
	"github.com/Fawzia2025/cb-care-live/internal/viewstate"
	"github.com/Fawzia2025/cb-care-live/pkg/apperror"
	"github.com/Fawzia2025/cb-care-live/pkg/logger"
)

// LandingPage renders the whole site from the visitor's session, or from
// the default view when the visitor has none yet.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	var state viewstate.Page
	if sess, ok := h.sessions.Lookup(r); ok {
		state = sess.Snapshot()
	}

	var selected *catalog.Entry
	if state.SelectedService != "" {
		if e, ok := h.catalog.Lookup(state.SelectedService); ok {
			selected = &e
		}
	}

	page := components.LandingPage(components.PageData{
		SiteName: h.site.Name,
		Contact:  components.ContactDetails{Phone: h.site.Phone, Email: h.site.Email},
		Year:     h.now().Year(),
		Entries:  h.catalog.Entries(),
		Values:   h.catalog.Values(),
		Selected: selected,
		State:    state,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := page.Render(w); err != nil {
		h.log.Error("failed to render page", logger.Error(err))
	}
}

// ToggleMenu opens or closes the mobile navigation
func (h *Handler) ToggleMenu(w http.ResponseWriter, r *http.Request) {
	h.sessions.Get(w, r).ToggleMenu()
	redirect(w, r, "/")
}

// CloseMenu closes the mobile navigation and jumps to the chosen section
func (h *Handler) CloseMenu(w http.ResponseWriter, r *http.Request) {
	h.sessions.Get(w, r).CloseMenu()

	target := r.PostFormValue("target")
	if !slices.Contains(components.NavTargets(), target) {
		target = ""
	}
	redirect(w, r, "/"+target)
}

// SelectService switches the services section to one service's detail
func (h *Handler) SelectService(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, ok := h.catalog.Lookup(slug); !ok {
		apperror.WriteJSON(w, h.log, apperror.NewNotFound("service", slug))
		return
	}

	h.sessions.Get(w, r).SelectService(slug)
	redirect(w, r, "/#services")
}

// BackToServices returns the services section to the list
func (h *Handler) BackToServices(w http.ResponseWriter, r *http.Request) {
	h.sessions.Get(w, r).BackToServices()
	redirect(w, r, "/#services")
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
