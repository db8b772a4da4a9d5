package session

import (
	"sync"
	"time"

	"github.com/Fawzia2025/cb-care-live/internal/viewstate"
)

// Session is one visitor's in-memory view state
type Session struct {
	ID string

	// Recommendation and Contact guard the two external calls
	Recommendation *viewstate.Flow
	Contact        *viewstate.Flow

	mu       sync.Mutex
	menu     viewstate.Menu
	services viewstate.ServiceView
	needs    string
	form     viewstate.ContactForm
	lastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:             id,
		Recommendation: viewstate.NewFlow(),
		Contact:        viewstate.NewFlow(),
		lastSeen:       now,
	}
}

func (s *Session) ToggleMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu.Toggle()
}

func (s *Session) CloseMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu.Close()
}

// SelectService switches the services section to the detail view for slug
func (s *Session) SelectService(slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services.Select(slug)
}

// BackToServices switches the services section back to the list view
func (s *Session) BackToServices() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services.Back()
}

// SetNeeds stores the recommendation input as typed
func (s *Session) SetNeeds(needs string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.needs = needs
}

// SetContactForm stores the contact fields as typed
func (s *Session) SetContactForm(f viewstate.ContactForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

// FinishContact records the contact outcome. A successful send clears the
// three fields; a failed one leaves them for the visitor to retry.
func (s *Session) FinishContact(r viewstate.Result) {
	if r.State == viewstate.Succeeded {
		s.mu.Lock()
		s.form = viewstate.ContactForm{}
		s.mu.Unlock()
	}
	s.Contact.Finish(r)
}

// Snapshot copies the current state for rendering
func (s *Session) Snapshot() viewstate.Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, _ := s.services.Selected()
	return viewstate.Page{
		MenuOpen:        s.menu.IsOpen(),
		SelectedService: selected,
		Needs:           s.needs,
		Recommendation:  s.Recommendation.Result(),
		Contact:         s.form,
		ContactStatus:   s.Contact.Result(),
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
