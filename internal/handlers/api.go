package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Fawzia2025/cb-care-live/domain/catalog"
	"github.com/Fawzia2025/cb-care-live/domain/contact"
	"github.com/Fawzia2025/cb-care-live/internal/viewstate"
	"github.com/Fawzia2025/cb-care-live/pkg/apperror"
)

// RecommendationRequest is the body of POST /api/recommendation
type RecommendationRequest struct {
	Needs string `json:"needs"`
}

// RecommendationResponse carries the settled recommendation
type RecommendationResponse struct {
	State string `json:"state"`
	Text  string `json:"text"`
}

// ContactResponse carries the settled contact status
type ContactResponse struct {
	State   string `json:"state"`
	Message string `json:"message"`
}

// ServicesResponse lists the catalog
type ServicesResponse struct {
	Services []catalog.Entry `json:"services"`
}

// APIRecommendation runs the recommendation flow for script clients
func (h *Handler) APIRecommendation(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteJSON(w, h.log, apperror.NewBadRequest("invalid JSON body").WithInternal(err))
		return
	}

	sess := h.sessions.Get(w, r)
	if !sess.Recommendation.TryBegin() {
		apperror.WriteJSON(w, h.log, apperror.ErrInFlight)
		return
	}

	sess.SetNeeds(req.Needs)
	result := h.recommend.Recommend(detach(r), req.Needs)
	sess.Recommendation.Finish(result)

	writeJSON(w, http.StatusOK, RecommendationResponse{State: result.State.String(), Text: result.Text})
}

// APIContact runs the contact flow for script clients
func (h *Handler) APIContact(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		apperror.WriteJSON(w, h.log, apperror.NewBadRequest("invalid JSON body").WithInternal(err))
		return
	}

	sess := h.sessions.Get(w, r)
	if !sess.Contact.TryBegin() {
		apperror.WriteJSON(w, h.log, apperror.ErrInFlight)
		return
	}

	sess.SetContactForm(viewstate.ContactForm(sub))
	result := h.contact.Submit(detach(r), sub)
	sess.FinishContact(result)

	writeJSON(w, http.StatusOK, ContactResponse{State: result.State.String(), Message: result.Text})
}

// APIServices returns the service catalog
func (h *Handler) APIServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ServicesResponse{Services: h.catalog.Entries()})
}
