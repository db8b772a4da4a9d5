// Package viewstate models the per-visitor presentation state of the page:
// submission outcomes, the mobile menu and the services list/detail toggle.
package viewstate

import (
	"sync"

	"golang.org/x/sync/semaphore"
)

// State is the lifecycle of a single external call
type State int

const (
	Idle State = iota
	Pending
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Result is the outcome of a flow. Text holds the succeeded text or the
// failure message; it is empty while Idle or Pending.
type Result struct {
	State State
	Text  string
}

// Success returns a Succeeded result carrying text
func Success(text string) Result {
	return Result{State: Succeeded, Text: text}
}

// Failure returns a Failed result carrying message
func Failure(message string) Result {
	return Result{State: Failed, Text: message}
}

// Flow tracks one in-flight external call and its last outcome.
// At most one call runs at a time; TryBegin refuses a second trigger
// while the first is pending.
type Flow struct {
	sem *semaphore.Weighted

	mu     sync.Mutex
	result Result
}

// NewFlow returns an idle flow
func NewFlow() *Flow {
	return &Flow{sem: semaphore.NewWeighted(1)}
}

// TryBegin moves the flow to Pending, discarding the previous result.
// It returns false without changing anything when a call is already pending.
func (f *Flow) TryBegin() bool {
	if !f.sem.TryAcquire(1) {
		return false
	}

	f.mu.Lock()
	f.result = Result{State: Pending}
	f.mu.Unlock()
	return true
}

// Finish records the outcome of the pending call and re-arms the trigger.
// It must only be called after a successful TryBegin.
func (f *Flow) Finish(r Result) {
	f.mu.Lock()
	f.result = r
	f.mu.Unlock()
	f.sem.Release(1)
}

// Result returns the current outcome
func (f *Flow) Result() Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// Pending reports whether a call is in flight
func (f *Flow) Pending() bool {
	return f.Result().State == Pending
}

// Menu is the mobile navigation drawer: open or closed, never both
type Menu struct {
	open bool
}

func (m *Menu) Toggle()      { m.open = !m.open }
func (m *Menu) Close()       { m.open = false }
func (m *Menu) IsOpen() bool { return m.open }

// ServiceView selects between the catalog list and a single service's
// detail. The zero value shows the list.
type ServiceView struct {
	selected string
}

// Select shows the detail view for slug
func (v *ServiceView) Select(slug string) {
	v.selected = slug
}

// Back returns to the list view
func (v *ServiceView) Back() {
	v.selected = ""
}

// Selected returns the slug in detail view, or false when the list is shown
func (v *ServiceView) Selected() (string, bool) {
	return v.selected, v.selected != ""
}

// ContactForm holds the three contact fields as typed by the visitor
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// Page is an immutable snapshot of everything the page renders from
type Page struct {
	MenuOpen        bool
	SelectedService string
	Needs           string
	Recommendation  Result
	Contact         ContactForm
	ContactStatus   Result
}
