// Package contact relays contact form submissions to the organisation's
// inbox through a transactional mail API.
package contact

import "context"

const (
	// SuccessMessage is shown once the relay accepts a submission
	SuccessMessage = "Message sent successfully!"

	// FailureMessage is shown for any relay error
	FailureMessage = "Failed to send message. Please try again later."
)

// Submission is the contact form content. Fields are relayed as entered.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Relay delivers a submission
type Relay interface {
	Send(ctx context.Context, sub Submission) error
}
