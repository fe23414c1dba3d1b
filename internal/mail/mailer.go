// Package mail delivers the welcome and agent installation emails.
package mail

import (
	"context"
)

// Message is a rendered email ready for delivery.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
	// Template names the message kind for logging and metrics.
	Template string
}

// Mailer delivers a message and returns the transport's message id.
type Mailer interface {
	Send(ctx context.Context, msg *Message) (string, error)
}
