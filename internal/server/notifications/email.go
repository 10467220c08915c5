// Package notifications dispatches email-send requests onto an external
// queue. Delivery itself is handled by a separate consumer; from this
// service's perspective a send is awaited but its result body is never
// inspected.
package notifications

import (
	"context"
	"strings"
)

// EmailMessage is the payload placed on the notification queue.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Dispatcher puts an email-send request onto the queue. A nil return means
// the request was accepted for at-least-once delivery; failures propagate
// as errors.
type Dispatcher interface {
	Send(ctx context.Context, msg EmailMessage) error
}

const (
	accountRegisteredSubject = "Account registered"
	accountRegisteredText    = "Hello {{username}}, your account has been registered."
)

// AccountRegisteredEmail builds the registration notification for the given
// recipient, substituting the {{username}} placeholder in the fixed template.
func AccountRegisteredEmail(to, username string) EmailMessage {
	return EmailMessage{
		To:      to,
		Subject: accountRegisteredSubject,
		Text:    strings.ReplaceAll(accountRegisteredText, "{{username}}", username),
	}
}
