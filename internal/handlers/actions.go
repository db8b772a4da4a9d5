package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Fawzia2025/cb-care-live/domain/contact"
	"github.com/Fawzia2025/cb-care-live/internal/viewstate"
)

// SubmitRecommendation runs the recommendation flow from the page form.
// While a request is already pending for the session the submit is a no-op.
func (h *Handler) SubmitRecommendation(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	needs := r.PostFormValue("needs")

	if !sess.Recommendation.TryBegin() {
		h.log.Debug("recommendation already pending", slog.String("session_id", sess.ID))
		redirect(w, r, "/#recommendation")
		return
	}

	sess.SetNeeds(needs)
	sess.Recommendation.Finish(h.recommend.Recommend(detach(r), needs))
	redirect(w, r, "/#recommendation")
}

// SubmitContact runs the contact flow from the page form
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sub := contact.Submission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}

	if !sess.Contact.TryBegin() {
		h.log.Debug("contact submission already pending", slog.String("session_id", sess.ID))
		redirect(w, r, "/#contact")
		return
	}

	sess.SetContactForm(viewstate.ContactForm(sub))
	sess.FinishContact(h.contact.Submit(detach(r), sub))
	redirect(w, r, "/#contact")
}
